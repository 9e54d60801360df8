package rapp

import "sync/atomic"

// initialized tracks process-wide library state. Initialize/Terminate
// are explicitly NOT goroutine-safe against each other or against
// concurrent calls into the rest of the package -- callers must
// sequence them relative to every other use, exactly as the upstream
// library's rapp_initialize/rapp_cleanup contract requires (spec.md
// §5). Every other exported function is reentrant on disjoint
// buffers; the image operations read this flag with an atomic load
// only as a cheap "did somebody forget to call Initialize" guard, not
// as a concurrency primitive.
var initialized atomic.Bool

// Initialize prepares the library for use. It is idempotent: calling
// it again while already initialized is a no-op.
func Initialize() error {
	initialized.Store(true)
	return nil
}

// Terminate releases any process-wide state. After it returns, every
// image operation returns ErrUninitialized until Initialize is called
// again. The helpers that take no image (GetBin/SetBin/GetU8/SetU8,
// AlignUp, IsAligned, MallocBuf, the Worksize functions, RectSum,
// Rasterize4/Rasterize8) do not check the flag.
func Terminate() {
	initialized.Store(false)
}

func checkInitialized(op string) error {
	if !initialized.Load() {
		return newErr(op, ErrUninitialized, "")
	}
	return nil
}
