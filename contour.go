package rapp

// contourDX/contourDY are the eight 8-connected neighbour offsets,
// indexed by chain code digit, starting East and turning toward +y
// (digit 1 is (+1,+1), digit 2 is (0,+1)); with +y down, this
// package's row-major image storage direction, that order runs
// clockwise on the image. Only rasterize.go's directionDigit uses
// this table; Contour8 does not.
var contourDX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
var contourDY = [8]int{0, 1, 1, 1, 0, -1, -1, -1}

// contour8DX/contour8DY are the eight 8-connected neighbour offsets
// Contour8's trace steps through, indexed by chain code digit --
// ported directly from test/reference/rapp_ref_contour.c's
// rapp_ref_8conn_loop dx/dy tables. This table's y sign is the
// opposite of rasterize.go's contourDX/contourDY (that one walks with
// +y as "down", matching this package's row-major image storage
// directly; this one matches the reference driver literally, since
// Contour8's candidate-direction table below is keyed to it). The two
// chain-code alphabets therefore differ: digits 1-3 mean a step toward
// -y (up) in Contour8's code and toward +y (down) in Rasterize8's, and
// digits 5-7 the reverse; 0 and 4 agree.
var contour8DX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
var contour8DY = [8]int{0, -1, -1, -1, 0, 1, 1, 1}

// contour8Cand is rapp_ref_8conn_code's candidate-direction table: the
// ordered list of directions to try next given the direction just
// taken, row-indexed by that direction.
var contour8Cand = [8][7]int{
	{1, 0, 7, 6, 5, 4, 5},
	{3, 2, 1, 0, 7, 6, 5},
	{3, 2, 1, 0, 7, 6, 7},
	{5, 4, 3, 2, 1, 0, 7},
	{5, 4, 3, 2, 1, 0, 1},
	{7, 6, 5, 4, 3, 2, 1},
	{7, 6, 5, 4, 3, 2, 3},
	{1, 0, 7, 6, 5, 4, 3},
}

// findDirDX/findDirDY/findDirCode are rapp_ref_8conn_find_dir's tables
// for locating the first step direction out of the origin pixel, once
// clockwise (cw, the first loop) and once counterclockwise (the
// second loop, re-entering from the opposite side).
var findDirDX = [4]int{1, 1, 0, -1}
var findDirDY = [4]int{0, 1, 1, 1}
var findDirCode = [4]int{0, 7, 6, 5}

// Contour8 traces the 8-connected boundary of the single foreground
// region reachable from its topmost-leftmost set pixel, returning an
// ASCII chain code (one '0'-'7' digit per boundary step).
//
// Ported from rapp_ref_contour_driver: a region's boundary can revisit
// its own origin pixel mid-trace (a figure-eight touching itself at
// one point, or a one-pixel-wide spur), so one Moore-neighbor loop
// from the origin is not enough -- the driver traces a first loop
// clockwise from the origin, then looks for a second, not-yet-visited
// direction out of the origin and traces a second loop counter-
// clockwise, appending its chain code to the first. A region with a
// single simple boundary produces an empty second loop (find_dir finds
// no unvisited outgoing direction) and this degenerates to one pass.
func Contour8(img BinImage) (string, error) {
	const op = "Contour8"
	if err := checkInitialized(op); err != nil {
		return "", err
	}
	if err := validateBin(op, img); err != nil {
		return "", err
	}

	startX, startY, found := findStart(img)
	if !found {
		return "", nil
	}

	visited := make([]byte, len(img.Data))
	var code []byte

	if dir, ok := contourFindDir(img, visited, startX, startY, true); ok {
		contourLoop(&code, img, visited, startX, startY, dir)
		if dir2, ok := contourFindDir(img, visited, startX, startY, false); ok {
			contourLoop(&code, img, visited, startX, startY, dir2)
		}
	}
	return string(code), nil
}

func findStart(img BinImage) (int, int, bool) {
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if GetBin(img.Data, img.Dim, x, y) != 0 {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}

// contourFindDir scans the four candidate neighbours of (xpos, ypos)
// clockwise (cw) or counterclockwise, skipping those outside the
// image, and returns the direction of the first one that is set. If
// it meets an already-visited neighbour before any set one, it stops
// and reports no direction.
func contourFindDir(img BinImage, visited []byte, xpos, ypos int, cw bool) (int, bool) {
	for k := 0; k < 4; k++ {
		p := k
		if !cw {
			p = 3 - k
		}
		x, y := xpos+findDirDX[p], ypos+findDirDY[p]
		if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
			continue
		}
		if GetBin(visited, img.Dim, x, y) != 0 {
			return 0, false
		}
		if GetBin(img.Data, img.Dim, x, y) != 0 {
			return findDirCode[p], true
		}
	}
	return 0, false
}

// contourLoop traces one Moore-neighbor boundary loop starting at
// (xpos, ypos) in initial direction dir, appending chain code digits
// to *code until the trace returns to (xpos, ypos).
func contourLoop(code *[]byte, img BinImage, visited []byte, xpos, ypos, dir int) {
	x, y := xpos+contour8DX[dir], ypos+contour8DY[dir]
	SetBin(visited, img.Dim, x, y, 1)
	*code = append(*code, '0'+byte(dir))

	for x != xpos || y != ypos {
		var conn [8]bool
		for k := 0; k < 8; k++ {
			xx, yy := x+contour8DX[k], y+contour8DY[k]
			if xx >= 0 && xx < img.Width && yy >= 0 && yy < img.Height {
				conn[k] = GetBin(img.Data, img.Dim, xx, yy) != 0
			}
		}

		next := dir
		for _, cand := range contour8Cand[dir] {
			if conn[cand] {
				next = cand
				break
			}
		}
		dir = next
		x += contour8DX[dir]
		y += contour8DY[dir]
		SetBin(visited, img.Dim, x, y, 1)
		*code = append(*code, '0'+byte(dir))
	}
}
