package rapp

// CondSetU8 writes val to every pixel of dst selected by m, leaving
// every other pixel of dst untouched -- the simplest conditional-
// processing operation spec.md §4.4 describes, and the one every
// more elaborate conditional operation in this module (CondCopyU8,
// and any neighbourhood-based variant built from GatherRowsU8) is a
// generalization of: select, process, scatter back.
func CondSetU8(dst U8Image, m BinImage, val int) error {
	const op = "CondSetU8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateBin(op, m); err != nil {
		return err
	}
	if m.Width != dst.Width || m.Height != dst.Height {
		return newErr(op, ErrOutOfRangeDim, "map/dst size mismatch")
	}
	if err := checkNoOverlap(op, dst.Data, m.Data); err != nil {
		return err
	}
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			if GetBin(m.Data, m.Dim, x, y) != 0 {
				SetU8(dst.Data, dst.Dim, x, y, val)
			}
		}
	}
	return nil
}

// CondCopyU8 copies src into dst wherever m selects a pixel, leaving
// every unselected dst pixel untouched. It is GatherU8 immediately
// followed by ScatterU8 with the same map, collapsed into a single
// pass since no processing happens on the packed values in between;
// call GatherU8/transform/ScatterU8 directly when the selected pixels
// need real work done on them between the two steps.
func CondCopyU8(dst, src U8Image, m BinImage) error {
	const op = "CondCopyU8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateU8(op, src); err != nil {
		return err
	}
	if err := validateBin(op, m); err != nil {
		return err
	}
	if m.Width != dst.Width || m.Height != dst.Height || src.Width != dst.Width || src.Height != dst.Height {
		return newErr(op, ErrOutOfRangeDim, "operand size mismatch")
	}
	if err := checkNoOverlap(op, dst.Data, src.Data); err != nil {
		return err
	}
	if err := checkNoOverlap(op, dst.Data, m.Data); err != nil {
		return err
	}
	if err := checkNoOverlap(op, src.Data, m.Data); err != nil {
		return err
	}
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			if GetBin(m.Data, m.Dim, x, y) != 0 {
				SetU8(dst.Data, dst.Dim, x, y, GetU8(src.Data, src.Dim, x, y))
			}
		}
	}
	return nil
}
