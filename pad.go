package rapp

// Padding fills the margin around a valid image region so that a
// kernel reading up to the next alignment boundary, or a morphology
// pass reading r pixels past the edge, never touches uninitialised
// memory. Grounded on spec.md §4.7; rapp_pad.c exposes the same three
// variants (align, const, clamp) for each pixel type.
//
// The const/clamp variants take an explicit interior origin (ox, oy)
// within img.Data: the caller has already allocated img so that the
// n-pixel border on every side of the [ox,ox+w)x[oy,oy+h) interior
// fits inside img.Dim/img.Height. This avoids negative image
// coordinates entirely, at the cost of requiring the caller to size
// and offset the buffer up front -- the same division of
// responsibility as worksize_bin for morphology.

// PadAlignU8 fills only the alignment-driven extension of each row --
// the columns at [Width, Dim) -- with val. This is the minimum needed
// to make word-at-a-time processing past the last valid pixel safe.
func PadAlignU8(img U8Image, val byte) error {
	if err := checkInitialized("pad_align_u8"); err != nil {
		return err
	}
	if err := validateU8("pad_align_u8", img); err != nil {
		return err
	}
	for y := 0; y < img.Height; y++ {
		row := img.Data[y*img.Dim : y*img.Dim+img.Dim]
		for x := img.Width; x < img.Dim; x++ {
			row[x] = val
		}
	}
	return nil
}

// PadConstU8 surrounds the w x h interior at (ox,oy) with a border of
// n pixels set to val.
func PadConstU8(img U8Image, ox, oy, w, h, n int, val byte) error {
	if err := checkInitialized("pad_const_u8"); err != nil {
		return err
	}
	if err := validateU8("pad_const_u8", img); err != nil {
		return err
	}
	forBorder(ox, oy, w, h, n, img.Width, img.Height, func(x, y int) {
		img.Data[y*img.Dim+x] = val
	})
	return nil
}

// PadClampU8 is PadConstU8's counterpart that replicates the nearest
// edge pixel instead of writing a fixed constant.
func PadClampU8(img U8Image, ox, oy, w, h, n int) error {
	if err := checkInitialized("pad_clamp_u8"); err != nil {
		return err
	}
	if err := validateU8("pad_clamp_u8", img); err != nil {
		return err
	}
	forBorder(ox, oy, w, h, n, img.Width, img.Height, func(x, y int) {
		cx := ox + clampCoord(x-ox, w)
		cy := oy + clampCoord(y-oy, h)
		img.Data[y*img.Dim+x] = img.Data[cy*img.Dim+cx]
	})
	return nil
}

func clampCoord(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// forBorder invokes set for every pixel in the n-pixel ring around the
// w x h interior at (ox,oy), clipped to the image bounds.
func forBorder(ox, oy, w, h, n, imgW, imgH int, set func(x, y int)) {
	for y := oy - n; y < oy+h+n; y++ {
		if y < 0 || y >= imgH {
			continue
		}
		for x := ox - n; x < ox+w+n; x++ {
			if x < 0 || x >= imgW {
				continue
			}
			if x >= ox && x < ox+w && y >= oy && y < oy+h {
				continue
			}
			set(x, y)
		}
	}
}

// PadConstBin is the binary-image analogue, used to satisfy
// morphology's erode-pads-with-1s / dilate-pads-with-0s protocol
// (spec.md §4.3).
func PadConstBin(img BinImage, ox, oy, w, h, n, val int) error {
	if err := checkInitialized("pad_const_bin"); err != nil {
		return err
	}
	if err := validateBin("pad_const_bin", img); err != nil {
		return err
	}
	forBorder(ox, oy, w, h, n, img.Width, img.Height, func(x, y int) {
		SetBin(img.Data, img.Dim, x, y, val)
	})
	return nil
}
