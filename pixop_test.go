package rapp

import "testing"

func TestAddU8Saturates(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 4, 1
	a := U8Image{Data: []byte{200, 10, 0, 255}, Dim: w, Width: w, Height: h}
	b := U8Image{Data: []byte{100, 20, 0, 1}, Dim: w, Width: w, Height: h}
	dst := U8Image{Data: make([]byte, w), Dim: w, Width: w, Height: h}

	if err := AddU8(dst, a, b, w, h); err != nil {
		t.Fatalf("AddU8: %v", err)
	}
	want := []byte{255, 30, 0, 255}
	for i := range want {
		if dst.Data[i] != want[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst.Data[i], want[i])
		}
	}
}

func TestFlipU8(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 2, 1
	src := U8Image{Data: []byte{0x00, 0x80}, Dim: w, Width: w, Height: h}
	dst := U8Image{Data: make([]byte, w), Dim: w, Width: w, Height: h}
	if err := FlipU8(dst, src, w, h); err != nil {
		t.Fatalf("FlipU8: %v", err)
	}
	if dst.Data[0] != 0x80 || dst.Data[1] != 0x00 {
		t.Fatalf("got %v, want [0x80 0x00]", dst.Data)
	}
}
