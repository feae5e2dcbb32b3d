package main

import (
	"fmt"
	"image/color"

	"github.com/veandco/go-sdl2/sdl"
)

// view is a single SDL window showing one decoded sprite canvas, scaled up
// from its native 56x56 pixels. Adapted from the teacher's windowed
// preview: same newView/free/clear/paint lifecycle, with the font and
// audio pieces it doesn't need stripped out.
type view struct {
	title string

	width  int32
	height int32
	scale  int32

	window   *sdl.Window
	renderer *sdl.Renderer
	rect     *sdl.Rect
	texture  *sdl.Texture

	freeFuncs []func() error
}

func newView(title string, w, h, scale int) (*view, error) {
	v := &view{
		title:  title,
		width:  int32(w),
		height: int32(h),
		scale:  int32(scale),
	}

	window, renderer, err := sdl.CreateWindowAndRenderer(int32(w*scale), int32(h*scale), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, v.errorf("unable to create window: %s", err)
	}
	v.deferFn(window.Destroy)
	v.deferFn(renderer.Destroy)

	window.SetTitle(title)

	texture, err := renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(w), int32(h))
	if err != nil {
		return nil, v.errorf("unable to create texture: %s", err)
	}
	v.deferFn(texture.Destroy)

	v.window = window
	v.renderer = renderer
	v.texture = texture
	v.rect = &sdl.Rect{X: 0, Y: 0, W: int32(w * scale), H: int32(h * scale)}

	return v, nil
}

func (v *view) errorf(format string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%q: %s: %s", v.title, format, err)
}

func (v *view) deferFn(f func() error) {
	v.freeFuncs = append(v.freeFuncs, f)
}

func (v *view) free() error {
	for i := len(v.freeFuncs) - 1; i >= 0; i-- {
		if err := v.freeFuncs[i](); err != nil {
			return fmt.Errorf("%q: %s", v.title, err)
		}
	}
	return nil
}

func (v *view) clear(c color.RGBA) error {
	sc := rgbToSDL(c)
	if err := v.renderer.SetDrawColor(sc.R, sc.G, sc.B, sc.A); err != nil {
		return v.errorf("unable to set draw color: %s", err)
	}
	if err := v.renderer.Clear(); err != nil {
		return v.errorf("unable to clear renderer: %s", err)
	}
	return nil
}

func (v *view) paint() {
	v.renderer.Present()
}
