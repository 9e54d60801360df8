package rapp

// CropU8 copies the w x h rectangle at (x0,y0) of src into dst,
// grounded on rapp_crop.c's straight sub-rectangle copy (no scaling,
// unlike bitblt it never combines with the destination).
func CropU8(dst, src U8Image, x0, y0, w, h int) error {
	op := "crop_u8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateU8(op, src); err != nil {
		return err
	}
	if dst.Width != w || dst.Height != h {
		return newErr(op, ErrOutOfRangeDim, "dst must be w x h")
	}
	if x0 < 0 || y0 < 0 || x0+w > src.Width || y0+h > src.Height {
		return newErr(op, ErrOutOfRangeParam, "crop rectangle outside src")
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			SetU8(dst.Data, dst.Dim, x, y, GetU8(src.Data, src.Dim, x0+x, y0+y))
		}
	}
	return nil
}
