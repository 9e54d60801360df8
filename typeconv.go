package rapp

// Type conversion bridges the binary and 8-bit pixel domains, the
// complement to thresholding. Grounded on rapp_type.c.

// ConvU8ToBin is an alias of ThreshGtU8 with level 0: any nonzero
// pixel becomes a set bit, mirroring rapp_type_u8_to_bin's "nonzero is
// foreground" convention.
func ConvU8ToBin(dst BinImage, src U8Image) error {
	return threshDriver("type_u8_to_bin", dst, src, func(v int) bool { return v != 0 })
}

// ConvBinToU8 writes 0xFF for set bits and 0x00 for clear bits.
func ConvBinToU8(dst U8Image, src BinImage) error {
	op := "type_bin_to_u8"
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateU8(op, dst); err != nil {
		return err
	}
	if err := validateBin(op, src); err != nil {
		return err
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return newErr(op, ErrOutOfRangeDim, "dst/src dimension mismatch")
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			v := 0
			if GetBin(src.Data, src.Dim, x, y) != 0 {
				v = 0xFF
			}
			SetU8(dst.Data, dst.Dim, x, y, v)
		}
	}
	return nil
}
