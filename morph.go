package rapp

import "github.com/rapp-go/rapp/internal/morphseq"

// StructuringElement names one of the four supported binary
// morphology shapes (spec.md §4.3).
type StructuringElement struct {
	Kind string // "rect", "diamond", "octagon", "disc"
	W, H int    // rect: width, height
	R    int    // diamond/octagon/disc: radius
}

func Rect(w, h int) StructuringElement   { return StructuringElement{Kind: "rect", W: w, H: h} }
func DiamondSE(r int) StructuringElement { return StructuringElement{Kind: "diamond", R: r} }
func OctagonSE(r int) StructuringElement { return StructuringElement{Kind: "octagon", R: r} }
func DiscSE(r int) StructuringElement    { return StructuringElement{Kind: "disc", R: r} }

func (se StructuringElement) steps() []morphseq.Step {
	switch se.Kind {
	case "rect":
		return morphseq.Rectangle(se.W, se.H)
	case "diamond":
		return morphseq.Diamond(se.R)
	case "octagon":
		return morphseq.Octagon(se.R)
	case "disc":
		return morphseq.Disc(se.R)
	}
	return nil
}

// WorksizeMorph returns the minimum length, in bytes, of the work
// buffer Dilate/Erode require for a width x height image: three
// ping-pong planes (the running base image, a per-group accumulator,
// and a scratch plane for each group member's shifted combine), so
// that decompose.go's grouped Diamond steps can be merged without any
// allocation inside the compute routine itself (spec.md §1 Non-goals,
// §4.3's Worksize contract).
func WorksizeMorph(width, height int) int {
	return 3 * WorksizeBin(width, height)
}

// Dilate computes the binary dilation of src by se into dst, over the
// full src.Width x src.Height image. Pixels shifted in from outside
// the image are treated as 0 (background), the conventional border
// rule for dilation. work must be at least WorksizeMorph(src.Width,
// src.Height) bytes, caller-owned scratch; Dilate performs no
// allocation of its own past validating this.
func Dilate(dst, src BinImage, se StructuringElement, work []byte) error {
	return morphPass("Dilate", dst, src, se, true, work)
}

// Erode computes the binary erosion of src by se into dst. Pixels
// shifted in from outside the image are treated as 1 (foreground),
// the dual border rule for erosion. See Dilate for the work buffer
// contract.
func Erode(dst, src BinImage, se StructuringElement, work []byte) error {
	return morphPass("Erode", dst, src, se, false, work)
}

func morphPass(op string, dst, src BinImage, se StructuringElement, dilate bool, work []byte) error {
	if err := checkInitialized(op); err != nil {
		return err
	}
	if err := validateBin(op, src); err != nil {
		return err
	}
	if err := validateBin(op, dst); err != nil {
		return err
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return newErr(op, ErrOutOfRangeDim, "dst/src size mismatch")
	}
	if err := checkNoOverlap(op, dst.Data, src.Data); err != nil {
		return err
	}
	need := WorksizeMorph(src.Width, src.Height)
	if len(work) < need {
		return newErr(op, ErrOutOfRangeParam, "work buffer shorter than WorksizeMorph")
	}
	if err := checkNoOverlap(op, work[:need], src.Data); err != nil {
		return err
	}
	if err := checkNoOverlap(op, work[:need], dst.Data); err != nil {
		return err
	}

	planeLen := WorksizeBin(src.Width, src.Height)
	planeDim := AlignUp((src.Width + 7) / 8)
	plane := func(i int) BinImage {
		return BinImage{Data: work[i*planeLen : (i+1)*planeLen], Dim: planeDim, Width: src.Width, Height: src.Height}
	}
	base, acc, tmp := plane(0), plane(1), plane(2)

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			SetBin(base.Data, base.Dim, x, y, GetBin(src.Data, src.Dim, x, y))
		}
	}

	steps := se.steps()
	for i := 0; i < len(steps); {
		j := i + 1
		for j < len(steps) && !steps[j].NewGroup {
			j++
		}
		group := steps[i:j]
		for k, step := range group {
			if k == 0 {
				shiftCombine(acc, base, step.DX, step.DY, dilate)
			} else {
				shiftCombine(tmp, base, step.DX, step.DY, dilate)
				combinePlanes(acc, acc, tmp, dilate)
			}
		}
		base, acc, tmp = acc, tmp, base
		i = j
	}

	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			SetBin(dst.Data, dst.Dim, x, y, GetBin(base.Data, base.Dim, x, y))
		}
	}
	return nil
}

// shiftCombine writes into dstImg the per-pixel combine of srcImg
// with itself shifted by (dx, dy): dilation combines f(x) with f(x-d)
// (standard (f (+) B)(x) = OR over b in B of f(x-b)); erosion is its
// dual and combines with f(x+d) instead (AND over b in B of f(x+b)),
// not f(x-d), since erosion is not simply "AND in place of OR" over
// the same shift direction -- see DESIGN.md for the derivation this
// corrects. dstImg and srcImg must not be the same backing array.
func shiftCombine(dstImg, srcImg BinImage, dx, dy int, dilate bool) {
	border := 0
	if !dilate {
		border = 1
	}
	sign := -1
	if !dilate {
		sign = 1
	}
	for y := 0; y < srcImg.Height; y++ {
		for x := 0; x < srcImg.Width; x++ {
			here := GetBin(srcImg.Data, srcImg.Dim, x, y)
			nx, ny := x+sign*dx, y+sign*dy
			var there int
			if nx < 0 || ny < 0 || nx >= srcImg.Width || ny >= srcImg.Height {
				there = border
			} else {
				there = GetBin(srcImg.Data, srcImg.Dim, nx, ny)
			}
			var v int
			if dilate {
				v = here | there
			} else {
				v = here & there
			}
			SetBin(dstImg.Data, dstImg.Dim, x, y, v)
		}
	}
}

// combinePlanes writes into dstImg the pointwise OR (dilate) or AND
// (erode) of a and b, used to merge a structuring-element group's
// several shiftCombine results (one per group member) computed
// against the same pre-group base image.
func combinePlanes(dstImg, a, b BinImage, dilate bool) {
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			av, bv := GetBin(a.Data, a.Dim, x, y), GetBin(b.Data, b.Dim, x, y)
			var v int
			if dilate {
				v = av | bv
			} else {
				v = av & bv
			}
			SetBin(dstImg.Data, dstImg.Dim, x, y, v)
		}
	}
}
