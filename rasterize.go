package rapp

import "strconv"

// Rasterize produces the chain code for a straight line via
// Bresenham's algorithm adapted to emit each step's direction
// instead of a pixel coordinate, grounded on rapp_rasterize.c. Digits
// come from contour.go's contourDX/contourDY table (1 is (+1,+1));
// Contour8 uses the y-mirrored contour8DX/contour8DY table, so the
// two codes agree only on digits 0 and 4.

// Rasterize8 returns the 8-direction chain code for the line from
// (x0,y0) to (x1,y1).
func Rasterize8(x0, y0, x1, y1 int) string {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	x, y := x0, y0
	var code []byte

	if dx >= dy {
		errAcc := dx / 2
		for i := 0; i < dx; i++ {
			errAcc -= dy
			stepX, stepY := sx, 0
			if errAcc < 0 {
				stepY = sy
				errAcc += dx
			}
			code = append(code, directionDigit(stepX, stepY))
			x += stepX
			y += stepY
		}
	} else {
		errAcc := dy / 2
		for i := 0; i < dy; i++ {
			errAcc -= dx
			stepX, stepY := 0, sy
			if errAcc < 0 {
				stepX = sx
				errAcc += dy
			}
			code = append(code, directionDigit(stepX, stepY))
			x += stepX
			y += stepY
		}
	}
	_ = x
	_ = y
	return string(code)
}

// Rasterize4 is Rasterize8's 4-connected counterpart: every step is
// split into its horizontal and vertical components.
func Rasterize4(x0, y0, x1, y1 int) string {
	var code []byte
	x, y := x0, y0
	sx, sy := sign(x1-x0), sign(y1-y0)
	for x != x1 {
		code = append(code, directionDigit(sx, 0))
		x += sx
	}
	for y != y1 {
		code = append(code, directionDigit(0, sy))
		y += sy
	}
	return string(code)
}

func directionDigit(dx, dy int) byte {
	for d := 0; d < 8; d++ {
		if contourDX[d] == dx && contourDY[d] == dy {
			return strconv.Itoa(d)[0]
		}
	}
	return '?'
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
