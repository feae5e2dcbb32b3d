package main

import (
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// shades is the 4-level grayscale palette a decoded sprite's 2-bit pixels
// index into, lightest first, matching vsprite.WritePPM's own palette.
var shades = [4]color.RGBA{
	{0xff, 0xff, 0xff, 0xff},
	{0xaa, 0xaa, 0xaa, 0xff},
	{0x55, 0x55, 0x55, 0xff},
	{0x33, 0x33, 0x33, 0xff},
}

func rgbToSDL(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
