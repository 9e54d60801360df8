package rapp

// MarginU8 is crop.go's inverse: it places src at (x0,y0) inside a
// larger dst, leaving the rest of dst untouched. Grounded on
// rapp_margin.c, used to embed an image before a padding pass adds
// the border.
func MarginU8(dst, src U8Image, x0, y0 int) error {
	op := "margin_u8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateU8(op, src); err != nil {
		return err
	}
	if x0 < 0 || y0 < 0 || x0+src.Width > dst.Width || y0+src.Height > dst.Height {
		return newErr(op, ErrOutOfRangeParam, "src does not fit inside dst at (x0,y0)")
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			SetU8(dst.Data, dst.Dim, x0+x, y0+y, GetU8(src.Data, src.Dim, x, y))
		}
	}
	return nil
}
