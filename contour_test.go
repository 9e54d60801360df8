package rapp

import "testing"

func TestContour8FilledSquare(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 3, 3
	data := make([]byte, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			SetBin(data, 1, x, y, 1)
		}
	}
	img := BinImage{Data: data, Dim: 1, Width: w, Height: h}

	code, err := Contour8(img)
	if err != nil {
		t.Fatalf("Contour8: %v", err)
	}
	if want := "00776655443322"; code != want {
		t.Fatalf("Contour8 = %q, want %q", code, want)
	}
}

func TestContour8EmptyImage(t *testing.T) {
	Initialize()
	defer Terminate()

	img := BinImage{Data: make([]byte, 3), Dim: 1, Width: 3, Height: 3}
	code, err := Contour8(img)
	if err != nil {
		t.Fatalf("Contour8: %v", err)
	}
	if code != "" {
		t.Fatalf("Contour8 on empty image = %q, want empty", code)
	}
}
