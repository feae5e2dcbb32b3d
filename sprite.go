package vsprite

// EncodingMode is the literal value of the header's encoding method field:
// Plain is written as a single 0 bit, any other value as its low two bits
// (so the reserved 1 goes out as "01"). Decode only
// ever produces Plain, XorOnly or DeltaXorSecond; Encode accepts any value
// (including the reserved 1, which Decode cannot parse back) because the
// field is just a packed integer, not a validated enum.
type EncodingMode uint8

const (
	// Plain stores both bitplanes independently, each delta-filtered on
	// its own. Wire code: a single 0 bit.
	Plain EncodingMode = 0

	// XorOnly delta-filters only the primary bitplane; the secondary is
	// stored as its raw XOR difference against the primary taken before
	// the primary is delta-filtered. Wire code: "10".
	XorOnly EncodingMode = 2

	// DeltaXorSecond delta-filters both bitplanes before XORing the
	// secondary against the primary. Wire code: "11".
	DeltaXorSecond EncodingMode = 3
)

// Sprite is a decoded 2-bits-per-pixel image on the fixed 7x7-tile canvas.
// WidthTiles and HeightTiles describe the original, pre-offset sprite
// region; Image always holds the full canvas.
type Sprite struct {
	WidthTiles     int
	HeightTiles    int
	PrimaryBuffer  int
	EncodingMethod EncodingMode
	Image          [CanvasWords]uint16
}
