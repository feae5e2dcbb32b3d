package vsprite

import (
	"bufio"
	"fmt"
	"io"
)

// paletteRGB is the 4-shade grayscale palette used by WritePPM, indexed by
// 2-bit pixel value: lightest for 0, darkest for 3.
var paletteRGB = [4][3]byte{
	{0xff, 0xff, 0xff},
	{0xaa, 0xaa, 0xaa},
	{0x55, 0x55, 0x55},
	{0x33, 0x33, 0x33},
}

// WritePPM renders the full 56x56 canvas as a binary (P6) PPM image, one
// grayscale shade per 2-bit pixel value.
func (s *Sprite) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", canvasStride, canvasStride); err != nil {
		return fmt.Errorf("vsprite: write ppm: %w", err)
	}

	for y := 0; y < canvasStride; y++ {
		for x := 0; x < canvasTiles; x++ {
			pixels := s.Image[y+x*canvasStride]
			for shift := 14; shift >= 0; shift -= 2 {
				idx := (pixels >> uint(shift)) & 0x03
				c := paletteRGB[idx]
				if _, err := bw.Write(c[:]); err != nil {
					return fmt.Errorf("vsprite: write ppm: %w", err)
				}
			}
		}
	}

	return bw.Flush()
}

// ExportBitplanePPM renders a single 1-bit-per-pixel plane — compact,
// stride heightTiles*8 — as a black/white PPM, for inspecting an
// intermediate bitplane during debugging.
func ExportBitplanePPM(w io.Writer, p *plane, widthTiles, heightTiles int) error {
	bw := bufio.NewWriter(w)
	width := widthTiles
	height := heightTiles * 8

	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width*8, height); err != nil {
		return fmt.Errorf("vsprite: export bitplane: %w", err)
	}

	black := [3]byte{0x00, 0x00, 0x00}
	white := [3]byte{0xff, 0xff, 0xff}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b := p[y+x*height]
			for shift := 7; shift >= 0; shift-- {
				c := white
				if (b>>uint(shift))&0x01 != 0 {
					c = black
				}
				if _, err := bw.Write(c[:]); err != nil {
					return fmt.Errorf("vsprite: export bitplane: %w", err)
				}
			}
		}
	}

	return bw.Flush()
}
