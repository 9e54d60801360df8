package rapp

import "github.com/rapp-go/rapp/internal/bitblt"

// BitbltOp names one of the twelve boolean raster operators a Bitblt
// call can apply, re-exported from internal/bitblt so callers never
// need to import the internal package directly.
type BitbltOp = bitblt.Op

const (
	BitbltCopy  = bitblt.Copy
	BitbltNot   = bitblt.Not
	BitbltAnd   = bitblt.And
	BitbltOr    = bitblt.Or
	BitbltXor   = bitblt.Xor
	BitbltNand  = bitblt.Nand
	BitbltNor   = bitblt.Nor
	BitbltXnor  = bitblt.Xnor
	BitbltAndn  = bitblt.Andn
	BitbltOrn   = bitblt.Orn
	BitbltNandn = bitblt.Nandn
	BitbltNorn  = bitblt.Norn
)

// Bitblt combines src into dst over a width x height rectangle using
// op, with the rectangle's top-left corner at pixel (dstX, dstY) in
// dst and (srcX, srcY) in src; the x positions need not be multiples
// of 8, so each operand starts at its own bit offset within a byte.
// It is the library's arbitrary-offset binary blit operation
// (spec.md §4.2).
func Bitblt(op BitbltOp, dst BinImage, dstX, dstY int, src BinImage, srcX, srcY, width, height int) error {
	const opName = "Bitblt"
	if err := checkInitialized(opName); err != nil {
		return err
	}
	if err := validateBin(opName, dst); err != nil {
		return err
	}
	if err := validateBin(opName, src); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return newErr(opName, ErrOutOfRangeDim, "width/height")
	}
	if dstX < 0 || dstY < 0 || dstX+width > dst.Width || dstY+height > dst.Height {
		return newErr(opName, ErrOutOfRangeDim, "dst rectangle out of range")
	}
	if srcX < 0 || srcY < 0 || srcX+width > src.Width || srcY+height > src.Height {
		return newErr(opName, ErrOutOfRangeDim, "src rectangle out of range")
	}
	if err := checkNoOverlap(opName, dst.Data, src.Data); err != nil {
		return err
	}

	dstByteOff := dstX / 8
	dstBitOff := dstX % 8
	srcByteOff := srcX / 8
	srcBitOff := srcX % 8

	bitblt.Run(op,
		dst.Data[dstY*dst.Dim+dstByteOff:], dst.Dim, dstBitOff,
		src.Data[srcY*src.Dim+srcByteOff:], src.Dim, srcBitOff,
		width, height)
	return nil
}
