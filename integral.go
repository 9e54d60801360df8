package rapp

// IntegralU8 computes the summed-area table of an 8-bit intensity
// image into dst (row-major, dstDim elements per row, one uint32 per
// pixel): dst[y][x] = src[y][x] + dst[y-1][x] + dst[y][x-1] -
// dst[y-1][x-1], using 0 for any term outside the image. Grounded on
// test/reference/rapp_ref_integral.c's rapp_ref_integral_sum_u8_u32.
func IntegralU8(dst []uint32, dstDim int, src U8Image) error {
	const op = "IntegralU8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, src); err != nil {
		return err
	}
	if dst == nil {
		return newErr(op, ErrNullPointer, "dst")
	}
	if dstDim < src.Width {
		return newErr(op, ErrOutOfRangeDim, "dstDim too small for width")
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var left, up, upleft uint32
			if x > 0 {
				left = dst[y*dstDim+x-1]
			}
			if y > 0 {
				up = dst[(y-1)*dstDim+x]
			}
			if x > 0 && y > 0 {
				upleft = dst[(y-1)*dstDim+x-1]
			}
			dst[y*dstDim+x] = uint32(GetU8(src.Data, src.Dim, x, y)) + left + up - upleft
		}
	}
	return nil
}

// IntegralBin is IntegralU8's binary-image counterpart: each pixel
// contributes 0 or 1, grounded on rapp_ref_integral_sum_bin_u32.
func IntegralBin(dst []uint32, dstDim int, src BinImage) error {
	const op = "IntegralBin"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateBin(op, src); err != nil {
		return err
	}
	if dst == nil {
		return newErr(op, ErrNullPointer, "dst")
	}
	if dstDim < src.Width {
		return newErr(op, ErrOutOfRangeDim, "dstDim too small for width")
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var left, up, upleft uint32
			if x > 0 {
				left = dst[y*dstDim+x-1]
			}
			if y > 0 {
				up = dst[(y-1)*dstDim+x]
			}
			if x > 0 && y > 0 {
				upleft = dst[(y-1)*dstDim+x-1]
			}
			dst[y*dstDim+x] = uint32(GetBin(src.Data, src.Dim, x, y)) + left + up - upleft
		}
	}
	return nil
}

// RectSum returns the sum of pixel values within [x0,x1) x [y0,y1)
// given its integral image, using the inclusion-exclusion identity
// spec.md's integral-image component relies on: rapp.h documents this
// as the whole point of building the table -- O(1) rectangle sums
// after an O(wh) pass.
func RectSum(integral []uint32, dim, x0, y0, x1, y1 int) uint32 {
	get := func(x, y int) uint32 {
		if x < 0 || y < 0 {
			return 0
		}
		return integral[y*dim+x]
	}
	return get(x1-1, y1-1) - get(x0-1, y1-1) - get(x1-1, y0-1) + get(x0-1, y0-1)
}
