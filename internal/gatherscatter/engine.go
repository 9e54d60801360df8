// Package gatherscatter implements the dense-pack conditional
// processing engine: compressing the pixels selected by a binary map
// into a contiguous pack buffer (gather) and writing a pack buffer
// back out to the positions a map selects (scatter). Grounded on
// test/reference/rapp_ref_gather.c and rapp_ref_scatter.c, which this
// package reproduces the semantics of exactly (scan order, population
// count return value, n-row neighbourhood gather).
package gatherscatter

import "github.com/rapp-go/rapp/internal/ref"

// Gather1Row scans the width x height region of map in raster order
// and, for every set bit, copies the corresponding byte of src into
// the next free slot of pack. It returns the number of pixels packed
// (the population of map), mirroring rapp_ref_gather_u8 called with
// rows=1.
func Gather1Row(pack, src []byte, srcDim int, mapData []byte, mapDim, width, height int) int {
	return GatherNRows(pack, src, srcDim, mapData, mapDim, width, height, 1)
}

// GatherNRows is the general n-row neighbourhood gather: for every
// set map bit at (x, y), it copies rows vertically adjacent bytes
// src[y+0..rows-1][x] into pack at consecutive positions (pack is
// therefore organized as population groups of "rows" bytes each, in
// scan order of the set bit), returning the map's population.
func GatherNRows(pack, src []byte, srcDim int, mapData []byte, mapDim, width, height, rows int) int {
	pos := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ref.GetBin(mapData, mapDim, x, y) == 0 {
				continue
			}
			for r := 0; r < rows; r++ {
				pack[pos*rows+r] = src[(y+r)*srcDim+x]
			}
			pos++
		}
	}
	return pos
}

// Scatter1Row is the inverse of Gather1Row: for every set map bit in
// raster order, it writes the next pack byte to the corresponding
// position of dst, mirroring rapp_ref_scatter_u8.
func Scatter1Row(dst []byte, dstDim int, mapData []byte, mapDim int, pack []byte, width, height int) {
	pos := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ref.GetBin(mapData, mapDim, x, y) == 0 {
				continue
			}
			dst[y*dstDim+x] = pack[pos]
			pos++
		}
	}
}

// GatherBin is the binary-pixel analogue of Gather1Row: the source is
// itself a packed bitmap, and each gathered "pixel" is a single bit,
// densely repacked (MSB-first) into pack.
func GatherBin(pack, src []byte, srcDim int, mapData []byte, mapDim, width, height int) int {
	pos := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ref.GetBin(mapData, mapDim, x, y) == 0 {
				continue
			}
			ref.SetBin(pack, 0, pos, 0, ref.GetBin(src, srcDim, x, y))
			pos++
		}
	}
	return pos
}

// ScatterBin is the binary-pixel analogue of Scatter1Row.
func ScatterBin(dst []byte, dstDim int, mapData []byte, mapDim int, pack []byte, width, height int) {
	pos := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ref.GetBin(mapData, mapDim, x, y) == 0 {
				continue
			}
			ref.SetBin(dst, dstDim, x, y, ref.GetBin(pack, 0, pos, 0))
			pos++
		}
	}
}
