package rapp

import "testing"

func TestRasterize8Horizontal(t *testing.T) {
	if got := Rasterize8(0, 0, 3, 0); got != "000" {
		t.Fatalf("Rasterize8 horizontal = %q, want %q", got, "000")
	}
}

func TestRasterize8Diagonal(t *testing.T) {
	if got := Rasterize8(0, 0, 3, 3); got != "111" {
		t.Fatalf("Rasterize8 diagonal = %q, want %q", got, "111")
	}
}

func TestRasterize4Horizontal(t *testing.T) {
	if got := Rasterize4(0, 0, 3, 0); got != "000" {
		t.Fatalf("Rasterize4 horizontal = %q, want %q", got, "000")
	}
}
