//go:build arm64

package rc

// VSize is the vector width in bytes modeled for arm64: 16, the width
// of a NEON Q register, matching rc_vec_neon.h's RC_VEC_SIZE.
const VSize = 16

// Hint flags, mirroring rc_vec_neon.h: NEON has native unsigned CMGT
// and CMGE (vcgtq_u8/vcgeq_u8), no native rounding average matching
// AVGT's truncating semantics, and no single-instruction GETMASKW
// (NEON has no PMOVMSKB equivalent; it takes a shift+pairwise-add
// reduction, so higher layers should prefer the byte-at-a-time path).
const (
	HintCMPGT    = true
	HintCMPGE    = true
	HintAVGT     = false
	HintAVGR     = true
	HintGETMASKW = false
)

// BackendName identifies the compiled-in backend, for diagnostics.
const BackendName = "arm64-neon-width"
