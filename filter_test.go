package rapp

import "testing"

func TestFilterU8BoxBlur(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 3, 3
	src := U8Image{Data: []byte{
		0, 0, 0,
		0, 9, 0,
		0, 0, 0,
	}, Dim: w, Width: w, Height: h}
	dst := U8Image{Data: make([]byte, w*h), Dim: w, Width: w, Height: h}
	kernel := []int{1, 1, 1, 1, 1, 1, 1, 1, 1}

	if err := FilterU8(dst, src, kernel, 3, 3, 9); err != nil {
		t.Fatalf("FilterU8: %v", err)
	}
	if GetU8(dst.Data, dst.Dim, 1, 1) != 1 {
		t.Fatalf("center = %d, want 1", GetU8(dst.Data, dst.Dim, 1, 1))
	}
}
