package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strconv"
	"strings"
	"time"

	vsprite "github.com/flga/vsprite"
	"github.com/ftrvxmtrx/tga"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

// decodeOne reads one sprite file and writes its canvas out as a PPM next
// to it (or to outPath, for a single-file run). When refTGA is set, the
// decoded canvas is also diffed against the reference image and the
// mismatching pixel count is reported to stderr.
func decodeOne(path, outPath, refTGA string) (*vsprite.Sprite, error) {
	sprite, err := vsprite.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".ppm"
	}
	out, err := os.Create(outPath)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()
	if err := sprite.WritePPM(out); err != nil {
		return nil, fmt.Errorf("write ppm %s: %w", outPath, err)
	}

	if refTGA != "" {
		if err := compareTGA(sprite, refTGA); err != nil {
			fmt.Fprintf(os.Stderr, "compare %s: %s\n", refTGA, err)
		}
	}

	return sprite, nil
}

// compareTGA decodes a reference TGA image (debug aid only, no encoder
// exists for this format) and reports how many pixels disagree with the
// sprite's own rendering of its canvas.
func compareTGA(sprite *vsprite.Sprite, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	ref, err := tga.Decode(f)
	if err != nil {
		return fmt.Errorf("decode tga: %w", err)
	}

	bounds := ref.Bounds()
	mismatches := 0
	for row := 0; row < 56 && row < bounds.Dy(); row++ {
		for col := 0; col < 7; col++ {
			word := sprite.Image[row+col*56]
			for sub, shift := 0, 14; shift >= 0; sub, shift = sub+1, shift-2 {
				px := col*8 + sub
				if px >= bounds.Dx() {
					continue
				}
				idx := (word >> uint(shift)) & 0x03
				want := shades[idx]
				got := pixelAt(ref, bounds.Min.X+px, bounds.Min.Y+row)
				if want.R != got.R || want.G != got.G || want.B != got.B {
					mismatches++
				}
			}
		}
	}

	fmt.Fprintf(os.Stderr, "%s: %d mismatching pixels\n", path, mismatches)
	return nil
}

func pixelAt(img image.Image, x, y int) struct{ R, G, B, A uint8 } {
	r, g, b, a := img.At(x, y).RGBA()
	return struct{ R, G, B, A uint8 }{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// roundTrip decodes a sprite, re-encodes it with method/primary and writes
// the result to outPath, for verifying encode(decode(x)) == x by hand.
func roundTrip(path, outPath string, method vsprite.EncodingMode, primary int) error {
	sprite, err := vsprite.DecodePath(path)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if outPath == "" {
		outPath = path + ".out"
	}
	if err := sprite.EncodePath(outPath, method, primary); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	return nil
}

func preview(sprites []*vsprite.Sprite, scale int) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("unable to init sdl: %s", err)
	}
	defer sdl.Quit()

	title := "vsprite"
	if len(sprites) == 1 {
		title = "vsprite preview"
	}

	v, err := newView(title, 56, 56, scale)
	if err != nil {
		return err
	}
	defer v.free()

	idx := 0
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN {
					continue
				}
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE, sdl.K_q:
					running = false
				case sdl.K_RIGHT, sdl.K_SPACE:
					idx = (idx + 1) % len(sprites)
				case sdl.K_LEFT:
					idx = (idx - 1 + len(sprites)) % len(sprites)
				}
			}
		}

		if err := v.clear(shades[0]); err != nil {
			return err
		}
		if err := drawRGBA(v, spriteToABGR(sprites[idx])); err != nil {
			return err
		}
		v.paint()

		time.Sleep(16 * time.Millisecond)
	}

	return nil
}

func run(paths []string, glob, outPath, refTGA string, method vsprite.EncodingMode, primary int, doRoundTrip, doPreview bool, scale int) error {
	if glob != "" {
		matches, err := expandGlob(glob)
		if err != nil {
			return err
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no input files (pass a path or -glob)")
	}

	var sprites []*vsprite.Sprite
	for _, p := range paths {
		if doRoundTrip {
			if err := roundTrip(p, outPath, method, primary); err != nil {
				return err
			}
			continue
		}

		sprite, err := decodeOne(p, outPath, refTGA)
		if err != nil {
			return err
		}
		sprites = append(sprites, sprite)
	}

	if doPreview && len(sprites) > 0 {
		return preview(sprites, scale)
	}
	return nil
}

func main() {
	methodFlag := flag.Int("method", int(vsprite.DeltaXorSecond), "encoding method to use when -roundtrip is set (0, 1, 2 or 3)")
	primaryFlag := flag.Int("primary", 0, "which bitplane (0 or 1) is stored first on the wire")
	outFlag := flag.String("out", "", "output path; defaults next to each input")
	globFlag := flag.String("glob", "", "doublestar glob of sprite files to process in a batch")
	refTGAFlag := flag.String("tga", "", "reference TGA image to diff a single decoded sprite against")
	roundTripFlag := flag.Bool("roundtrip", false, "decode then re-encode each input instead of exporting a PPM")
	previewFlag := flag.Bool("preview", false, "open an SDL window to page through decoded sprites")
	scaleFlag := flag.Int("scale", 8, "preview window scale factor")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to file")
	memprofile := flag.String("memprofile", "", "write memory profile to file")
	flag.Parse()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not create CPU profile:", err)
			os.Exit(2)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintln(os.Stderr, "could not start CPU profile:", err)
			os.Exit(2)
		}
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not create memory profile:", err)
			os.Exit(2)
		}
		defer f.Close()
		defer func() {
			runtime.GC()
			if err := pprof.WriteHeapProfile(f); err != nil {
				panic("could not write memory profile: " + err.Error())
			}
		}()
	}

	method := vsprite.EncodingMode(uint8(validMethod(*methodFlag)))

	if err := run(flag.Args(), *globFlag, *outFlag, *refTGAFlag, method, *primaryFlag, *roundTripFlag, *previewFlag, *scaleFlag); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

// validMethod rejects anything outside the codec's wire range at the CLI
// boundary; Encode itself trusts its EncodingMode argument verbatim.
func validMethod(m int) int {
	switch m {
	case 0, 1, 2, 3:
		return m
	default:
		fmt.Fprintln(os.Stderr, "invalid -method "+strconv.Itoa(m)+", must be 0, 1, 2 or 3")
		os.Exit(2)
		return 0
	}
}
