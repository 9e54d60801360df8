package rapp

import "testing"

func TestMomentOrder1Bin(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 4, 1
	img := BinImage{Data: make([]byte, 1), Dim: 1, Width: w, Height: h}
	SetBin(img.Data, 1, 1, 0, 1)
	SetBin(img.Data, 1, 3, 0, 1)

	n, sumX, sumY, err := MomentOrder1Bin(img)
	if err != nil {
		t.Fatalf("MomentOrder1Bin: %v", err)
	}
	if n != 2 || sumX != 4 || sumY != 0 {
		t.Fatalf("got n=%d sumX=%d sumY=%d", n, sumX, sumY)
	}
}

func TestMomentOrder2Bin(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 2, 2
	img := BinImage{Data: make([]byte, 2), Dim: 1, Width: w, Height: h}
	SetBin(img.Data, 1, 0, 0, 1)
	SetBin(img.Data, 1, 1, 1, 1)

	n, sumX, sumY, sumXX, sumYY, sumXY, err := MomentOrder2Bin(img)
	if err != nil {
		t.Fatalf("MomentOrder2Bin: %v", err)
	}
	if n != 2 || sumX != 1 || sumY != 1 || sumXX != 1 || sumYY != 1 || sumXY != 1 {
		t.Fatalf("unexpected moments: n=%d sumX=%d sumY=%d sumXX=%d sumYY=%d sumXY=%d",
			n, sumX, sumY, sumXX, sumYY, sumXY)
	}
}
