//go:build !amd64 && !arm64

package rc

// VSize is the vector width in bytes of the portable fallback backend.
// It mirrors the plain machine-word (8-byte) arithmetic the upstream
// library falls back to on targets without a dedicated SIMD header.
const VSize = 8

// Hint flags: constants declaring which operations this backend can
// realize with a single native instruction on real hardware. The
// portable backend has no native vector unit, so every hint is false;
// higher layers consulting these always take the generic code path.
const (
	HintCMPGT    = false
	HintCMPGE    = false
	HintAVGT     = false
	HintAVGR     = false
	HintGETMASKW = false
)

// BackendName identifies the compiled-in backend, for diagnostics.
const BackendName = "generic"
