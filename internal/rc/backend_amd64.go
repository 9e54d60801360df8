//go:build amd64

package rc

// VSize is the vector width in bytes modeled for amd64: 16, the width
// of an SSE/SSE2 XMM register, matching rc_vec_sse.h's RC_VEC_SIZE.
// The arithmetic below is still plain Go over a byte slice -- no
// assembly, no unsafe, see DESIGN.md -- but callers get the same
// chunking behaviour (same number of words per row) a real SSE build
// of the upstream library would have.
const VSize = 16

// Hint flags, mirroring RC_VEC_HINT_CMPGE / RC_VEC_HINT_AVGR /
// RC_VEC_HINT_GETMASKW in rc_vec_sse.h: SSE has a native unsigned
// CMPGE? No (only CMPGT on signed lanes, hence the min/max trick in
// the reference header) and a native AVGR (PAVGB) and a native
// GETMASKW (PMOVMSKB). CMPGT has no single-instruction unsigned form
// either, so it is derived the same way the C header derives it.
const (
	HintCMPGT    = false
	HintCMPGE    = false
	HintAVGT     = false
	HintAVGR     = true
	HintGETMASKW = true
)

// BackendName identifies the compiled-in backend, for diagnostics.
const BackendName = "amd64-sse-width"
