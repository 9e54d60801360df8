package rapp

import "github.com/rapp-go/rapp/internal/ref"

// GetBin reads the binary pixel at (x, y) of a packed image with row
// stride dim bytes. Bit 0 of byte 0 is the leftmost pixel (most
// significant bit first); see DESIGN.md ("Bit order") for why this
// port uses one fixed bit order regardless of GOARCH.
func GetBin(data []byte, dim, x, y int) int { return ref.GetBin(data, dim, x, y) }

// SetBin writes val (0 or 1) to the binary pixel at (x, y).
func SetBin(data []byte, dim, x, y, val int) { ref.SetBin(data, dim, x, y, val) }

// GetU8 reads an 8-bit intensity pixel at (x, y) of an image with row
// stride dim bytes.
func GetU8(data []byte, dim, x, y int) int { return ref.GetU8(data, dim, x, y) }

// SetU8 writes an 8-bit intensity pixel at (x, y).
func SetU8(data []byte, dim, x, y, val int) { ref.SetU8(data, dim, x, y, val) }
