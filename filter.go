package rapp

// Fixed-kernel convolution applies a small caller-supplied kernel to
// an 8-bit image, clamping at the edges. Grounded on rapp_filter.c's
// separable and general 2-D convolution drivers; this port implements
// the general case only, since the spec does not distinguish the
// separable fast path as a separate public contract.

// FilterU8 convolves src with kernel (kh rows x kw columns, kw/kh
// odd) and writes the result into dst, scaled by 1/divisor. Edge
// pixels are handled by clamping the sampled coordinate to the image
// bounds, matching the clamp padding convention used elsewhere (§4.7).
func FilterU8(dst, src U8Image, kernel []int, kw, kh, divisor int) error {
	op := "filter_u8"
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
	if kw <= 0 || kh <= 0 || kw%2 == 0 || kh%2 == 0 || len(kernel) != kw*kh {
		return newErr(op, ErrOutOfRangeParam, "kernel")
	}
	if divisor == 0 {
		return newErr(op, ErrOutOfRangeParam, "divisor")
	}
	hw, hh := kw/2, kh/2
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			sum := 0
			for ky := 0; ky < kh; ky++ {
				sy := clampCoord(y+ky-hh, src.Height)
				for kx := 0; kx < kw; kx++ {
					sx := clampCoord(x+kx-hw, src.Width)
					sum += kernel[ky*kw+kx] * GetU8(src.Data, src.Dim, sx, sy)
				}
			}
			SetU8(dst.Data, dst.Dim, x, y, clampByteInt(sum/divisor))
		}
	}
	return nil
}

func clampByteInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
