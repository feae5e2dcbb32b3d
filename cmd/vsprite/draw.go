package main

import (
	"fmt"

	vsprite "github.com/flga/vsprite"
)

// drawRGBA copies an already-rendered ABGR8888 pixel buffer into v's
// texture and blits it to the renderer, the same texture Lock/copy/Unlock
// sequence the teacher uses for the PPU's framebuffer.
func drawRGBA(v *view, data []byte) error {
	pixels, _, err := v.texture.Lock(nil)
	if err != nil {
		return fmt.Errorf("unable to lock texture: %s", err)
	}
	copy(pixels, data)
	v.texture.Unlock()

	if err := v.renderer.Copy(v.texture, nil, v.rect); err != nil {
		return fmt.Errorf("unable to copy texture: %s", err)
	}
	return nil
}

// spriteToABGR renders a decoded sprite's canvas into a 56x56 ABGR8888
// buffer suitable for drawRGBA, using the same 4-shade palette as
// vsprite.WritePPM. Sprite.Image is addressed plane[row+col*56] with col
// in [0,7): each 16-bit word packs 8 horizontally adjacent pixels of one
// canvas row within that tile column, MSB pair (shift 14) leftmost.
func spriteToABGR(s *vsprite.Sprite) []byte {
	const side = 56
	const cols = 7
	buf := make([]byte, side*side*4)

	for row := 0; row < side; row++ {
		for col := 0; col < cols; col++ {
			word := s.Image[row+col*side]
			for sub, shift := 0, 14; shift >= 0; sub, shift = sub+1, shift-2 {
				idx := (word >> uint(shift)) & 0x03
				c := shades[idx]
				px := col*8 + sub
				o := (row*side + px) * 4
				buf[o+0] = c.R
				buf[o+1] = c.G
				buf[o+2] = c.B
				buf[o+3] = c.A
			}
		}
	}

	return buf
}
