package vsprite

import "testing"

func TestOffsetRoundTrip(t *testing.T) {
	cases := []struct {
		name                string
		widthTiles, heightTiles int
	}{
		{"1x1", 1, 1},
		{"3x2", 3, 2},
		{"7x7", 7, 7},
		{"1x7", 1, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var compact plane
			stride := tc.heightTiles * 8
			for i := 0; i < tc.widthTiles*stride; i++ {
				compact[i] = byte((i*19 + 3) & 0xFF)
			}

			var canvas, back plane
			applyOffset(&compact, &canvas, tc.widthTiles, tc.heightTiles)
			removeOffset(&canvas, &back, tc.widthTiles, tc.heightTiles)

			for i := 0; i < tc.widthTiles*stride; i++ {
				if back[i] != compact[i] {
					t.Fatalf("index %d: got %#x, want %#x", i, back[i], compact[i])
				}
			}
		})
	}
}

func Test1x1OffsetMatchesReferenceIndex(t *testing.T) {
	// The reference implementation's test suite places a 1x1 sprite's
	// pixel data at word offset 216 in the 392-word canvas; verify our
	// width-centered, bottom-aligned placement agrees.
	var compact plane
	compact[0] = 1

	var canvas plane
	applyOffset(&compact, &canvas, 1, 1)

	const wantOffset = 216
	if canvas[wantOffset] != 1 {
		t.Fatalf("expected placed byte at index %d, found it elsewhere", wantOffset)
	}
	for i, b := range canvas {
		if i != wantOffset && b != 0 {
			t.Fatalf("unexpected non-zero byte at index %d", i)
		}
	}
}
