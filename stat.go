package rapp

import (
	"math/bits"

	"github.com/rapp-go/rapp/internal/rc"
)

// SumBin returns the number of set pixels in a binary image --
// grounded on test/reference/rapp_ref_stat.c's population-count
// family. Padding bits beyond Width in the last byte of each row are
// masked off before counting, since the processing region beyond the
// logical image is not part of the documented result.
func SumBin(img BinImage) (uint64, error) {
	const op = "SumBin"
	if err := checkInitialized(op); err != nil {
		return 0, err
	}
	if err := validateBin(op, img); err != nil {
		return 0, err
	}
	fullBytes := img.Width / 8
	tailBits := img.Width % 8

	var total uint64
	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Dim:]
		for i := 0; i < fullBytes; i++ {
			total += uint64(bits.OnesCount8(row[i]))
		}
		if tailBits > 0 {
			mask := byte(0xFF << uint(8-tailBits))
			total += uint64(bits.OnesCount8(row[fullBytes] & mask))
		}
	}
	return total, nil
}

// CountNonzeroU8 returns the number of pixels in an intensity image
// with a nonzero value, implemented through the same chunked
// accumulate-then-flush discipline internal/rc's CntV/CntR pair is
// designed for: a comparison mask vector is folded into the byte
// accumulator at most CntN times before being reduced and reset,
// matching the "no accumulator exceeds its declared bound" contract
// the backend's byte counters require.
func CountNonzeroU8(img U8Image) (uint64, error) {
	const op = "CountNonzeroU8"
	if err := checkInitialized(op); err != nil {
		return 0, err
	}
	if err := validateU8(op, img); err != nil {
		return 0, err
	}

	var total uint64
	acc := rc.Zero()
	zero := rc.Zero()
	calls := 0
	flush := func() {
		total += rc.CntR(acc)
		acc = rc.Zero()
		calls = 0
	}

	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Dim:]
		x := 0
		for ; x+rc.VSize <= img.Width; x += rc.VSize {
			v := rc.Load(row[x:])
			mask := rc.Gt(v, zero)
			acc = rc.CntV(acc, mask)
			calls++
			if calls == rc.CntN {
				flush()
			}
		}
		for ; x < img.Width; x++ {
			if row[x] != 0 {
				total++
			}
		}
	}
	flush()
	return total, nil
}

// SumU8 returns the arithmetic sum of every pixel in an intensity
// image (exact, not saturated -- the accumulator here is a plain
// uint64 running total rather than internal/rc's SumV/SumR, since a
// statistic needs the true sum, not the clamped-to-255 value SumV
// produces; SumV/SumR exist for kernels that need a saturating
// running accumulator mid-pipeline, e.g. a clipped brightness
// integrator, not for this top-level reduction).
func SumU8(img U8Image) (uint64, error) {
	const op = "SumU8"
	if err := checkInitialized(op); err != nil {
		return 0, err
	}
	if err := validateU8(op, img); err != nil {
		return 0, err
	}
	var total uint64
	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Dim : y*img.Dim+img.Width]
		for _, b := range row {
			total += uint64(b)
		}
	}
	return total, nil
}
