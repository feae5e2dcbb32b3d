package vsprite

import "testing"

func TestDeltaFilterRoundTrip(t *testing.T) {
	cases := []struct {
		name               string
		widthTiles, height int
	}{
		{"1x1", 1, 1},
		{"2x3", 2, 3},
		{"7x7", 7, 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p plane
			stride := tc.height * 8
			for i := 0; i < tc.widthTiles*stride; i++ {
				p[i] = byte((i*73 + 5) & 0xFF)
			}
			orig := p

			diffEncode(tc.widthTiles, tc.height, &p)
			diffDecode(tc.widthTiles, tc.height, &p)

			if p != orig {
				t.Fatalf("diffDecode(diffEncode(p)) != p for %s", tc.name)
			}
		})
	}
}

func TestDeltaFilterAllZero(t *testing.T) {
	var p plane
	orig := p
	diffEncode(1, 1, &p)
	if p != orig {
		t.Fatalf("delta-encoding an all-zero plane should leave it unchanged, got %v", p[:8])
	}
}
