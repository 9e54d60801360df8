package rapp

import "testing"

func TestReduceExpandSymmetry(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 4, 4
	src := BinImage{Data: make([]byte, h), Dim: 1, Width: w, Height: h}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			SetBin(src.Data, 1, x, y, 1)
		}
	}
	SetBin(src.Data, 1, 3, 3, 1)

	dst := BinImage{Data: make([]byte, 2), Dim: 1, Width: 2, Height: 2}
	if err := ReduceRankBin(dst, src, 1); err != nil {
		t.Fatalf("ReduceRankBin: %v", err)
	}
	if GetBin(dst.Data, 1, 0, 0) != 1 {
		t.Fatal("fully-set block not reduced to 1")
	}
	if GetBin(dst.Data, 1, 1, 1) != 1 {
		t.Fatal("single set source bit not reduced to 1 at rank 1")
	}

	back := BinImage{Data: make([]byte, h), Dim: 1, Width: w, Height: h}
	if err := ExpandBin(back, dst); err != nil {
		t.Fatalf("ExpandBin: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if GetBin(back.Data, 1, x, y) != 1 {
				t.Fatalf("expand mismatch at (%d,%d)", x, y)
			}
		}
	}
}
