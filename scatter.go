package rapp

import "github.com/rapp-go/rapp/internal/gatherscatter"

// ScatterU8 is GatherU8's inverse: writes consecutive pack bytes back
// to the positions map selects, in raster order. Grounded on
// test/reference/rapp_ref_scatter.c.
func ScatterU8(dst U8Image, m BinImage, pack []byte) error {
	const op = "ScatterU8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateBin(op, m); err != nil {
		return err
	}
	if pack == nil {
		return newErr(op, ErrNullPointer, "pack")
	}
	if m.Width != dst.Width || m.Height != dst.Height {
		return newErr(op, ErrOutOfRangeDim, "map/dst size mismatch")
	}
	if err := checkNoOverlap(op, pack, dst.Data); err != nil {
		return err
	}
	if err := checkNoOverlap(op, pack, m.Data); err != nil {
		return err
	}
	if err := checkNoOverlap(op, dst.Data, m.Data); err != nil {
		return err
	}
	gatherscatter.Scatter1Row(dst.Data, dst.Dim, m.Data, m.Dim, pack, m.Width, m.Height)
	return nil
}

// ScatterBin is ScatterU8's binary-pixel analogue.
func ScatterBin(dst, m BinImage, pack []byte) error {
	const op = "ScatterBin"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateBin(op, dst); err != nil {
		return err
	}
	if err := validateBin(op, m); err != nil {
		return err
	}
	if pack == nil {
		return newErr(op, ErrNullPointer, "pack")
	}
	if err := checkNoOverlap(op, pack, dst.Data); err != nil {
		return err
	}
	if err := checkNoOverlap(op, pack, m.Data); err != nil {
		return err
	}
	if err := checkNoOverlap(op, dst.Data, m.Data); err != nil {
		return err
	}
	gatherscatter.ScatterBin(dst.Data, dst.Dim, m.Data, m.Dim, pack, m.Width, m.Height)
	return nil
}
