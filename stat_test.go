package rapp

import "testing"

func TestSumBin16x16(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 16, 16
	data := make([]byte, 2*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%3 == 0 {
				SetBin(data, 2, x, y, 1)
			}
		}
	}
	img := BinImage{Data: data, Dim: 2, Width: w, Height: h}
	got, err := SumBin(img)
	if err != nil {
		t.Fatalf("SumBin: %v", err)
	}
	var want uint64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%3 == 0 {
				want++
			}
		}
	}
	if got != want {
		t.Fatalf("SumBin = %d, want %d", got, want)
	}
}

func TestCountNonzeroU8(t *testing.T) {
	Initialize()
	defer Terminate()

	const w, h = 40, 3
	data := make([]byte, w*h)
	var want uint64
	for i := range data {
		if i%5 != 0 {
			data[i] = byte(i%200 + 1)
			want++
		}
	}
	img := U8Image{Data: data, Dim: w, Width: w, Height: h}
	got, err := CountNonzeroU8(img)
	if err != nil {
		t.Fatalf("CountNonzeroU8: %v", err)
	}
	if got != want {
		t.Fatalf("CountNonzeroU8 = %d, want %d", got, want)
	}
}

func TestSumU8(t *testing.T) {
	Initialize()
	defer Terminate()

	img := U8Image{Data: []byte{1, 2, 3, 4}, Dim: 4, Width: 4, Height: 1}
	got, err := SumU8(img)
	if err != nil {
		t.Fatalf("SumU8: %v", err)
	}
	if got != 10 {
		t.Fatalf("SumU8 = %d, want 10", got)
	}
}
