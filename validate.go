package rapp

import "unsafe"

// validateBin checks a BinImage against the API shell's standing
// invariants (spec.md §7): a non-nil buffer, a stride that can hold
// Width pixels, positive dimensions, and a buffer long enough for
// Height rows of Dim bytes. It is the single prologue check every
// exported binary-image operation runs before touching a kernel,
// matching the upstream convention that argument validation happens
// once, in the API shell, never inside a kernel.
//
// Unlike the upstream C library, this does not require Dim to be a
// multiple of Alignment: Alignment is a logical contract this port
// enforces for buffers it allocates itself (MallocBuf, WorksizeBin),
// not a hard gate on every caller-supplied stride, since there is no
// unsafe reinterpretation anywhere in this module for a misaligned
// stride to actually break (see DESIGN.md). ErrUnalignedStride is
// still part of the error taxonomy for callers that want to enforce
// it explicitly via IsAligned themselves.
func validateBin(op string, img BinImage) error {
	if img.Data == nil {
		return newErr(op, ErrNullPointer, "image data")
	}
	if img.Width <= 0 || img.Height <= 0 {
		return newErr(op, ErrOutOfRangeDim, "width/height")
	}
	if img.Dim*8 < img.Width {
		return newErr(op, ErrOutOfRangeDim, "dim too small for width")
	}
	if len(img.Data) < img.Dim*img.Height {
		return newErr(op, ErrOutOfRangeDim, "data shorter than dim*height")
	}
	return nil
}

// validateU8 is validateBin's counterpart for 8-bit intensity images.
func validateU8(op string, img U8Image) error {
	if img.Data == nil {
		return newErr(op, ErrNullPointer, "image data")
	}
	if img.Width <= 0 || img.Height <= 0 {
		return newErr(op, ErrOutOfRangeDim, "width/height")
	}
	if img.Dim < img.Width {
		return newErr(op, ErrOutOfRangeDim, "dim too small for width")
	}
	if len(img.Data) < img.Dim*img.Height {
		return newErr(op, ErrOutOfRangeDim, "data shorter than dim*height")
	}
	return nil
}

// byteRange returns the [start, end) address range a non-empty slice
// occupies. This is the one place outside internal/rc's documented
// no-unsafe boundary that this module uses unsafe.Pointer, and only
// for address-range *comparison* -- never to reinterpret memory as a
// different type or width, which is the hazard the compute core's
// no-unsafe rule guards against (see DESIGN.md). Detecting operand
// overlap is an explicit, named contract of this library (ErrOverlap)
// and Go has no portable overlap check for two arbitrary []byte
// without comparing addresses this way.
func byteRange(b []byte) (start, end uintptr) {
	if len(b) == 0 {
		return 0, 0
	}
	start = uintptr(unsafe.Pointer(&b[0]))
	return start, start + uintptr(len(b))
}

// overlaps reports whether a and b's backing arrays share any byte.
func overlaps(a, b []byte) bool {
	as, ae := byteRange(a)
	bs, be := byteRange(b)
	if ae == as || be == bs {
		return false
	}
	return as < be && bs < ae
}

// checkNoOverlap returns ErrOverlap if a and b's image data share any
// byte, the validation every operation that reads one buffer while
// writing another must run.
func checkNoOverlap(op string, a, b []byte) error {
	if overlaps(a, b) {
		return newErr(op, ErrOverlap, "operands overlap")
	}
	return nil
}
