package rapp

// Reduction and expansion halve or double a binary image's linear
// dimensions by collapsing or replicating 2x2 blocks. Grounded on
// rapp_reduce.c / rapp_expand.c; used together to validate the
// reduce-then-expand symmetry invariant (spec.md §6 property 7).

// ReduceRankBin collapses each 2x2 block of src into one pixel of dst,
// set when at least rank of the four source bits are set (1 <= rank
// <= 4). Out-of-range source positions (odd trailing row/column) are
// treated as 0.
func ReduceRankBin(dst, src BinImage, rank int) error {
	op := "reduce_rank_bin"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateBin(op, dst); err != nil {
		return err
	}
	if err := validateBin(op, src); err != nil {
		return err
	}
	if rank < 1 || rank > 4 {
		return newErr(op, ErrOutOfRangeParam, "rank")
	}
	wantW, wantH := (src.Width+1)/2, (src.Height+1)/2
	if dst.Width != wantW || dst.Height != wantH {
		return newErr(op, ErrOutOfRangeDim, "dst dimensions must be ceil(src/2)")
	}
	for y := 0; y < wantH; y++ {
		for x := 0; x < wantW; x++ {
			sum := srcBit(src, 2*x, 2*y) + srcBit(src, 2*x+1, 2*y) +
				srcBit(src, 2*x, 2*y+1) + srcBit(src, 2*x+1, 2*y+1)
			v := 0
			if sum >= rank {
				v = 1
			}
			SetBin(dst.Data, dst.Dim, x, y, v)
		}
	}
	return nil
}

func srcBit(img BinImage, x, y int) int {
	if x >= img.Width || y >= img.Height {
		return 0
	}
	return GetBin(img.Data, img.Dim, x, y)
}

// ExpandBin replicates each pixel of src into a 2x2 block of dst,
// expand's role as reduce's inverse.
func ExpandBin(dst, src BinImage) error {
	op := "expand_bin"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateBin(op, dst); err != nil {
		return err
	}
	if err := validateBin(op, src); err != nil {
		return err
	}
	if dst.Width != src.Width*2 || dst.Height != src.Height*2 {
		return newErr(op, ErrOutOfRangeDim, "dst dimensions must be 2*src")
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := GetBin(src.Data, src.Dim, x, y)
			SetBin(dst.Data, dst.Dim, 2*x, 2*y, v)
			SetBin(dst.Data, dst.Dim, 2*x+1, 2*y, v)
			SetBin(dst.Data, dst.Dim, 2*x, 2*y+1, v)
			SetBin(dst.Data, dst.Dim, 2*x+1, 2*y+1, v)
		}
	}
	return nil
}
