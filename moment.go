package rapp

// Moments summarise a binary image's set pixels as a point
// distribution, grounded on rapp_moment.c's order-1/order-2 reference
// loops. Used for centroid and orientation estimation upstream of
// this library.

// MomentOrder1Bin returns the population and first-order moments
// (Σx, Σy) over every set pixel of img.
func MomentOrder1Bin(img BinImage) (n, sumX, sumY int64, err error) {
	op := "moment_order1_bin"
	if err = checkInitialized(op); err != nil {
		return
	}
	if err = validateBin(op, img); err != nil {
		return
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if GetBin(img.Data, img.Dim, x, y) != 0 {
				n++
				sumX += int64(x)
				sumY += int64(y)
			}
		}
	}
	return
}

// MomentOrder2Bin additionally returns the second-order moments
// (Σx², Σy², Σxy).
func MomentOrder2Bin(img BinImage) (n, sumX, sumY, sumXX, sumYY, sumXY int64, err error) {
	op := "moment_order2_bin"
	if err = checkInitialized(op); err != nil {
		return
	}
	if err = validateBin(op, img); err != nil {
		return
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			if GetBin(img.Data, img.Dim, x, y) != 0 {
				n++
				ix, iy := int64(x), int64(y)
				sumX += ix
				sumY += iy
				sumXX += ix * ix
				sumYY += iy * iy
				sumXY += ix * iy
			}
		}
	}
	return
}
