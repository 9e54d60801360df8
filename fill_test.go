package rapp

import (
	"image"
	"testing"
)

func TestFill4BinDoesNotCrossGap(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 5, 1
	img := BinImage{Data: make([]byte, 1), Dim: 1, Width: w, Height: h}
	for _, x := range []int{0, 1, 3, 4} {
		SetBin(img.Data, 1, x, 0, 1)
	}
	dst := BinImage{Data: make([]byte, 1), Dim: 1, Width: w, Height: h}
	work := make([]image.Point, WorksizeFill(w, h))

	if err := Fill4Bin(dst, img, 0, 0, work); err != nil {
		t.Fatalf("Fill4Bin: %v", err)
	}
	for _, x := range []int{0, 1} {
		if GetBin(dst.Data, 1, x, 0) != 1 {
			t.Fatalf("pixel %d should have been filled", x)
		}
	}
	for _, x := range []int{2, 3, 4} {
		if GetBin(dst.Data, 1, x, 0) != 0 {
			t.Fatalf("pixel %d should not have been filled (gap at x=2)", x)
		}
	}
}

func TestFill8BinCrossesDiagonalGap(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 2, 2
	img := BinImage{Data: make([]byte, 2), Dim: 1, Width: w, Height: h}
	SetBin(img.Data, 1, 0, 0, 1)
	SetBin(img.Data, 1, 1, 1, 1)
	dst := BinImage{Data: make([]byte, 2), Dim: 1, Width: w, Height: h}
	work := make([]image.Point, WorksizeFill(w, h))

	if err := Fill8Bin(dst, img, 0, 0, work); err != nil {
		t.Fatalf("Fill8Bin: %v", err)
	}
	if GetBin(dst.Data, 1, 1, 1) != 1 {
		t.Fatal("diagonal neighbour not reached under 8-connectivity")
	}
}
