package gatherscatter

import (
	"testing"

	"github.com/rapp-go/rapp/internal/ref"
)

func TestGatherScatterRoundTrip(t *testing.T) {
	const w, h = 5, 4
	src := make([]byte, w*h)
	for i := range src {
		src[i] = byte(i + 1)
	}
	mapDim := 1
	mapData := make([]byte, mapDim*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				ref.SetBin(mapData, mapDim, x, y, 1)
			}
		}
	}

	pack := make([]byte, w*h)
	n := Gather1Row(pack, src, w, mapData, mapDim, w, h)

	dst := make([]byte, w*h)
	Scatter1Row(dst, w, mapData, mapDim, pack, w, h)

	count := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if ref.GetBin(mapData, mapDim, x, y) != 0 {
				count++
				if dst[y*w+x] != src[y*w+x] {
					t.Fatalf("(%d,%d): got %d, want %d", x, y, dst[y*w+x], src[y*w+x])
				}
			} else if dst[y*w+x] != 0 {
				t.Fatalf("(%d,%d): unselected pixel written, got %d", x, y, dst[y*w+x])
			}
		}
	}
	if n != count {
		t.Fatalf("Gather1Row returned %d, want population %d", n, count)
	}
}

func TestGatherNRows(t *testing.T) {
	const w, h, rows = 4, 5, 2
	src := make([]byte, w*h)
	for i := range src {
		src[i] = byte(i)
	}
	mapDim := 1
	mapData := make([]byte, mapDim*(h-rows+1))
	ref.SetBin(mapData, mapDim, 1, 0, 1)
	ref.SetBin(mapData, mapDim, 3, 2, 1)

	pack := make([]byte, 2*rows)
	n := GatherNRows(pack, src, w, mapData, mapDim, w, h-rows+1, rows)
	if n != 2 {
		t.Fatalf("population = %d, want 2", n)
	}
	want := []byte{src[0*w+1], src[1*w+1], src[2*w+3], src[3*w+3]}
	for i := range want {
		if pack[i] != want[i] {
			t.Fatalf("pack[%d] = %d, want %d", i, pack[i], want[i])
		}
	}
}

func TestGatherScatterBin(t *testing.T) {
	const w, h = 9, 2
	src := make([]byte, 2*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ref.SetBin(src, 2, x, y, (x+y)%3%2)
		}
	}
	mapDim := 2
	mapData := make([]byte, mapDim*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%2 == 0 {
				ref.SetBin(mapData, mapDim, x, y, 1)
			}
		}
	}
	pack := make([]byte, 4)
	n := GatherBin(pack, src, 2, mapData, mapDim, w, h)
	dst := make([]byte, 2*h)
	ScatterBin(dst, 2, mapData, mapDim, pack, w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x%2 == 0 {
				if ref.GetBin(dst, 2, x, y) != ref.GetBin(src, 2, x, y) {
					t.Fatalf("(%d,%d) mismatch", x, y)
				}
			}
		}
	}
	_ = n
}
