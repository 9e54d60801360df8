package ref

// BitbltOp mirrors one of rapp_ref_bitblt.c's rapp_ref_bitblt_{op}
// functions: a pure function of the destination pixel (op1) and
// source pixel (op2), each 0 or 1.
type BitbltOp func(op1, op2 int) int

func BitbltCopy(op1, op2 int) int { return op2 }
func BitbltNot(op1, op2 int) int  { return 1 - op2 }
func BitbltAnd(op1, op2 int) int  { return op1 & op2 }
func BitbltOr(op1, op2 int) int   { return op1 | op2 }
func BitbltXor(op1, op2 int) int  { return op1 ^ op2 }
func BitbltNand(op1, op2 int) int { return 1 - (op1 & op2) }
func BitbltNor(op1, op2 int) int  { return 1 - (op1 | op2) }
func BitbltXnor(op1, op2 int) int { return 1 - (op1 ^ op2) }
func BitbltAndn(op1, op2 int) int { return op1 &^ op2 }
func BitbltOrn(op1, op2 int) int  { return op1 | (1 - op2) }
func BitbltNandn(op1, op2 int) int {
	return 1 - (op1 &^ op2)
}
func BitbltNorn(op1, op2 int) int { return (1 - op1) & op2 }

// BitbltDriver is the naive per-pixel reference driver, mirroring
// rapp_ref_bitblt_driver: for every pixel in the width x height
// rectangle, read the destination and source bits, apply op, and
// write the result back into dst.
func BitbltDriver(op BitbltOp, dst []byte, dstDim, dstX, dstY int, src []byte, srcDim, srcX, srcY, width, height int) {
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			d := GetBin(dst, dstDim, dstX+x, dstY+y)
			s := GetBin(src, srcDim, srcX+x, srcY+y)
			SetBin(dst, dstDim, dstX+x, dstY+y, op(d, s))
		}
	}
}
