package rapp

import "github.com/rapp-go/rapp/internal/gatherscatter"

// GatherU8 densely packs the pixels of src selected by map into pack,
// in raster order, returning the population of map. Grounded on
// test/reference/rapp_ref_gather.c's 1-row case.
func GatherU8(pack []byte, src U8Image, m BinImage) (int, error) {
	const op = "GatherU8"
	if err := checkInitialized(op); err != nil {
		return 0, err
	}
	if err := validateU8(op, src); err != nil {
		return 0, err
	}
	if err := validateBin(op, m); err != nil {
		return 0, err
	}
	if pack == nil {
		return 0, newErr(op, ErrNullPointer, "pack")
	}
	if m.Width != src.Width || m.Height != src.Height {
		return 0, newErr(op, ErrOutOfRangeDim, "map/src size mismatch")
	}
	if err := checkNoOverlap(op, pack, src.Data); err != nil {
		return 0, err
	}
	if err := checkNoOverlap(op, pack, m.Data); err != nil {
		return 0, err
	}
	if err := checkNoOverlap(op, src.Data, m.Data); err != nil {
		return 0, err
	}
	return gatherscatter.Gather1Row(pack, src.Data, src.Dim, m.Data, m.Dim, m.Width, m.Height), nil
}

// GatherRowsU8 is GatherU8's n-row neighbourhood generalization: for
// every set map bit at (x, y), it gathers rows vertically adjacent
// source bytes starting at row y. Grounded on rapp_ref_gather_u8
// called with rows > 1.
func GatherRowsU8(pack []byte, src U8Image, m BinImage, rows int) (int, error) {
	const op = "GatherRowsU8"
	if err := checkInitialized(op); err != nil {
		return 0, err
	}
	if err := validateU8(op, src); err != nil {
		return 0, err
	}
	if m.Data == nil {
		return 0, newErr(op, ErrNullPointer, "map")
	}
	if rows <= 0 || m.Height+rows-1 > src.Height {
		return 0, newErr(op, ErrOutOfRangeDim, "rows")
	}
	if pack == nil {
		return 0, newErr(op, ErrNullPointer, "pack")
	}
	if err := checkNoOverlap(op, pack, src.Data); err != nil {
		return 0, err
	}
	if err := checkNoOverlap(op, pack, m.Data); err != nil {
		return 0, err
	}
	if err := checkNoOverlap(op, src.Data, m.Data); err != nil {
		return 0, err
	}
	return gatherscatter.GatherNRows(pack, src.Data, src.Dim, m.Data, m.Dim, m.Width, m.Height, rows), nil
}

// GatherBin is GatherU8's binary-pixel analogue.
func GatherBin(pack []byte, src, m BinImage) (int, error) {
	const op = "GatherBin"
	if err := checkInitialized(op); err != nil {
		return 0, err
	}
	if err := validateBin(op, src); err != nil {
		return 0, err
	}
	if err := validateBin(op, m); err != nil {
		return 0, err
	}
	if pack == nil {
		return 0, newErr(op, ErrNullPointer, "pack")
	}
	if err := checkNoOverlap(op, pack, src.Data); err != nil {
		return 0, err
	}
	if err := checkNoOverlap(op, pack, m.Data); err != nil {
		return 0, err
	}
	if err := checkNoOverlap(op, src.Data, m.Data); err != nil {
		return 0, err
	}
	return gatherscatter.GatherBin(pack, src.Data, src.Dim, m.Data, m.Dim, m.Width, m.Height), nil
}
