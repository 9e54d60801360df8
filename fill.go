package rapp

import "image"

// Connected-component seed fill turns every pixel reachable from a
// seed coordinate, through set pixels, into set pixels of the
// destination -- grounded on rapp_fill.c's explicit-stack flood fill
// (the upstream avoids recursion so the caller can bound stack memory
// via a work buffer). This port keeps that discipline literally: the
// stack lives in a caller-supplied work slice sized by WorksizeFill,
// not in a slice fillDriver grows itself (spec.md §1 Non-goals, §4.5).

// Fill4Bin performs a 4-connected flood fill of img starting at
// (seedX, seedY): every set pixel reachable via 4-connectivity from
// the seed is written into dst (also set); img itself is read-only.
// dst must be zero-initialized by the caller before the call --
// fillDriver uses dst's own bits as its visited set, so a dst that
// already has bits set in the reachable region would stop the fill
// short. work must be at least WorksizeFill(img.Width, img.Height)
// image.Point elements of caller-owned scratch.
func Fill4Bin(dst, img BinImage, seedX, seedY int, work []image.Point) error {
	return fillDriver("fill_4conn_bin", dst, img, seedX, seedY, [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}, work)
}

// Fill8Bin is Fill4Bin's 8-connected counterpart.
func Fill8Bin(dst, img BinImage, seedX, seedY int, work []image.Point) error {
	return fillDriver("fill_8conn_bin", dst, img, seedX, seedY,
		[][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}, work)
}

func fillDriver(op string, dst, img BinImage, seedX, seedY int, neighbours [][2]int, work []image.Point) error {
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateBin(op, dst); err != nil {
		return err
	}
	if err := validateBin(op, img); err != nil {
		return err
	}
	if dst.Width != img.Width || dst.Height != img.Height {
		return newErr(op, ErrOutOfRangeDim, "dst/src dimension mismatch")
	}
	if err := checkNoOverlap(op, dst.Data, img.Data); err != nil {
		return err
	}
	if seedX < 0 || seedX >= img.Width || seedY < 0 || seedY >= img.Height {
		return newErr(op, ErrOutOfRangeParam, "seed")
	}
	need := WorksizeFill(img.Width, img.Height)
	if len(work) < need {
		return newErr(op, ErrOutOfRangeParam, "work buffer shorter than WorksizeFill")
	}
	if GetBin(img.Data, img.Dim, seedX, seedY) == 0 {
		return nil
	}

	top := 0
	push := func(x, y int) {
		work[top] = image.Point{X: x, Y: y}
		top++
	}
	push(seedX, seedY)
	SetBin(dst.Data, dst.Dim, seedX, seedY, 1)

	for top > 0 {
		top--
		p := work[top]
		SetBin(dst.Data, dst.Dim, p.X, p.Y, 1)

		for _, d := range neighbours {
			nx, ny := p.X+d[0], p.Y+d[1]
			if nx < 0 || nx >= img.Width || ny < 0 || ny >= img.Height {
				continue
			}
			if GetBin(dst.Data, dst.Dim, nx, ny) == 1 || GetBin(img.Data, img.Dim, nx, ny) == 0 {
				continue
			}
			SetBin(dst.Data, dst.Dim, nx, ny, 1)
			push(nx, ny)
		}
	}
	return nil
}
