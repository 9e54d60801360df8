package rapp

// Rotation reorders pixels by multiples of 90 degrees. Grounded on
// rapp_rotate.c, which implements the same three fixed angles as
// transposing loops rather than a general affine kernel.

// Rotate90U8 rotates src clockwise by 90 degrees into dst (dst must be
// src.Height x src.Width).
func Rotate90U8(dst, src U8Image) error {
	op := "rotate_90_u8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateU8(op, src); err != nil {
		return err
	}
	if dst.Width != src.Height || dst.Height != src.Width {
		return newErr(op, ErrOutOfRangeDim, "dst must be transposed dimensions")
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			SetU8(dst.Data, dst.Dim, src.Height-1-y, x, GetU8(src.Data, src.Dim, x, y))
		}
	}
	return nil
}

// Rotate180U8 rotates src by 180 degrees into dst (same dimensions).
func Rotate180U8(dst, src U8Image) error {
	op := "rotate_180_u8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateU8(op, src); err != nil {
		return err
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return newErr(op, ErrOutOfRangeDim, "dst/src dimension mismatch")
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			SetU8(dst.Data, dst.Dim, src.Width-1-x, src.Height-1-y, GetU8(src.Data, src.Dim, x, y))
		}
	}
	return nil
}

// Rotate270U8 rotates src clockwise by 270 degrees (counterclockwise
// by 90) into dst.
func Rotate270U8(dst, src U8Image) error {
	op := "rotate_270_u8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateU8(op, src); err != nil {
		return err
	}
	if dst.Width != src.Height || dst.Height != src.Width {
		return newErr(op, ErrOutOfRangeDim, "dst must be transposed dimensions")
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			SetU8(dst.Data, dst.Dim, y, src.Width-1-x, GetU8(src.Data, src.Dim, x, y))
		}
	}
	return nil
}
