package rapp

import "github.com/rapp-go/rapp/internal/rc"

// pixopBinary applies a lane-wise rc.Vec function over a width x
// height region of two U8Images, writing into dst (which may alias
// one of the operands, but not overlap a different buffer -- pixop
// is the one family the upstream library allows in-place for).
func pixopBinary(op string, dst, a, b U8Image, width, height int, f func(x, y rc.Vec) rc.Vec) error {
	if err := checkInitialized(op); err != nil {
		return err
	}
	for _, img := range []U8Image{dst, a, b} {
		if err := validateU8(op, img); err != nil {
			return err
		}
	}
	if width <= 0 || height <= 0 || width > dst.Width || width > a.Width || width > b.Width ||
		height > dst.Height || height > a.Height || height > b.Height {
		return newErr(op, ErrOutOfRangeDim, "region exceeds an operand")
	}

	for y := 0; y < height; y++ {
		dRow := dst.Data[y*dst.Dim:]
		aRow := a.Data[y*a.Dim:]
		bRow := b.Data[y*b.Dim:]
		x := 0
		for ; x+rc.VSize <= width; x += rc.VSize {
			av := rc.Load(aRow[x:])
			bv := rc.Load(bRow[x:])
			rc.Store(f(av, bv), dRow[x:])
		}
		for ; x < width; x++ {
			var av, bv rc.Vec
			av[0], bv[0] = aRow[x], bRow[x]
			dRow[x] = f(av, bv)[0]
		}
	}
	return nil
}

// AddU8 computes dst = saturating(a + b) over a width x height region.
func AddU8(dst, a, b U8Image, width, height int) error {
	return pixopBinary("AddU8", dst, a, b, width, height, rc.AddSaturate)
}

// SubU8 computes dst = saturating(a - b).
func SubU8(dst, a, b U8Image, width, height int) error {
	return pixopBinary("SubU8", dst, a, b, width, height, rc.SubSaturate)
}

// AbsDiffU8 computes dst = |a - b|.
func AbsDiffU8(dst, a, b U8Image, width, height int) error {
	return pixopBinary("AbsDiffU8", dst, a, b, width, height, rc.AbsDiff)
}

// MinU8 / MaxU8 compute the lane-wise minimum / maximum.
func MinU8(dst, a, b U8Image, width, height int) error {
	return pixopBinary("MinU8", dst, a, b, width, height, rc.Min)
}

func MaxU8(dst, a, b U8Image, width, height int) error {
	return pixopBinary("MaxU8", dst, a, b, width, height, rc.Max)
}

// AvgU8 computes the truncating average of a and b (AVGT).
func AvgU8(dst, a, b U8Image, width, height int) error {
	return pixopBinary("AvgU8", dst, a, b, width, height, rc.AvgT)
}

// AvgRoundU8 computes the rounding average of a and b (AVGR).
func AvgRoundU8(dst, a, b U8Image, width, height int) error {
	return pixopBinary("AvgRoundU8", dst, a, b, width, height, rc.AvgR)
}

// FlipU8 toggles the signed-bias-128 convention of every pixel in
// src, writing the result to dst (pixop_flip_u8 upstream).
func FlipU8(dst, src U8Image, width, height int) error {
	const op = "FlipU8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateU8(op, src); err != nil {
		return err
	}
	if width <= 0 || height <= 0 || width > dst.Width || width > src.Width ||
		height > dst.Height || height > src.Height {
		return newErr(op, ErrOutOfRangeDim, "region exceeds an operand")
	}
	for y := 0; y < height; y++ {
		dRow := dst.Data[y*dst.Dim:]
		sRow := src.Data[y*src.Dim:]
		x := 0
		for ; x+rc.VSize <= width; x += rc.VSize {
			v := rc.Load(sRow[x:])
			rc.Store(rc.FlipBias128(v), dRow[x:])
		}
		for ; x < width; x++ {
			dRow[x] = sRow[x] ^ 0x80
		}
	}
	return nil
}
