package vsprite

// canvasStride is the number of pixel rows in one canvas column: all 7
// tile rows stacked, 8 pixels each.
const canvasStride = canvasTiles * 8

// widthOffsetTiles and heightOffsetRows compute where a widthTiles x
// heightTiles sprite sits inside the fixed 7x7 canvas: centered
// horizontally (rounding the left margin up when the remainder is odd,
// returned in tile columns) and flush against the bottom edge (returned in
// pixel rows).
func widthOffsetTiles(widthTiles int) int {
	return (canvasTiles - widthTiles + 1) >> 1
}

func heightOffsetRows(heightTiles int) int {
	return (canvasTiles - heightTiles) * 8
}

// applyOffset places a compact widthTiles*heightTiles*8 plane (stride
// heightTiles*8, as produced by RleCodec/DeltaFilter) into its
// width-centered, bottom-aligned position on the full canvasStride-row
// canvas. canvasOut is zeroed first.
func applyOffset(compact *plane, canvasOut *plane, widthTiles, heightTiles int) {
	*canvasOut = plane{}

	wOff := widthOffsetTiles(widthTiles)
	hOffRows := heightOffsetRows(heightTiles)
	compactStride := heightTiles * 8

	for c := 0; c < widthTiles; c++ {
		dstBase := (wOff+c)*canvasStride + hOffRows
		srcBase := c * compactStride
		for r := 0; r < compactStride; r++ {
			canvasOut[dstBase+r] = compact[srcBase+r]
		}
	}
}

// removeOffset is the inverse of applyOffset: it crops the canvas region
// back down to a compact widthTiles*heightTiles*8 plane.
func removeOffset(canvasIn *plane, compactOut *plane, widthTiles, heightTiles int) {
	*compactOut = plane{}

	wOff := widthOffsetTiles(widthTiles)
	hOffRows := heightOffsetRows(heightTiles)
	compactStride := heightTiles * 8

	for c := 0; c < widthTiles; c++ {
		srcBase := (wOff+c)*canvasStride + hOffRows
		dstBase := c * compactStride
		for r := 0; r < compactStride; r++ {
			compactOut[dstBase+r] = canvasIn[srcBase+r]
		}
	}
}
