package vsprite

import (
	"fmt"
	"io"
	"os"
)

// Decode reads a sprite file from r: a one-byte width/height header, a
// one-byte primary-buffer flag plus the start of the bitstream, the
// primary bitplane's RLE packets, the encoding method bits, the secondary
// bitplane's RLE packets, and nothing after that — trailing bytes are
// ignored.
func Decode(r io.Reader) (*Sprite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("vsprite: decode: %w", err)
	}
	if len(data) < 2 {
		return nil, fmt.Errorf("vsprite: decode: %w", ErrUnexpectedEOF)
	}

	widthTiles := int(data[0] >> 4)
	heightTiles := int(data[0] & 0x0f)
	if widthTiles == 0 || widthTiles > canvasTiles || heightTiles == 0 || heightTiles > canvasTiles {
		return nil, fmt.Errorf("vsprite: decode: %w", ErrHeaderInvalid)
	}
	primaryBuffer := int(data[1] >> 7)

	s := newBitStream(data, 1, 6)

	var bp0, bp1 plane
	if err := rleDecode(s, widthTiles, heightTiles, &bp0); err != nil {
		return nil, err
	}

	if s.done() {
		return nil, fmt.Errorf("vsprite: decode: %w", ErrUnexpectedEOF)
	}
	rawMethod := uint64(s.readBit())
	s.advance(1)
	if rawMethod != 0 {
		if s.done() {
			return nil, fmt.Errorf("vsprite: decode: %w", ErrUnexpectedEOF)
		}
		rawMethod = (rawMethod << 1) | uint64(s.readBit())
		s.advance(1)
	}

	if err := rleDecode(s, widthTiles, heightTiles, &bp1); err != nil {
		return nil, err
	}

	diffDecode(widthTiles, heightTiles, &bp0)
	if rawMethod != 2 {
		diffDecode(widthTiles, heightTiles, &bp1)
	}
	if rawMethod > 1 {
		n := widthTiles * heightTiles * 8
		for i := 0; i < n; i++ {
			bp1[i] ^= bp0[i]
		}
	}

	var lowCompact, highCompact plane
	if primaryBuffer == 0 {
		lowCompact, highCompact = bp0, bp1
	} else {
		lowCompact, highCompact = bp1, bp0
	}

	var lowCanvas, highCanvas plane
	applyOffset(&lowCompact, &lowCanvas, widthTiles, heightTiles)
	applyOffset(&highCompact, &highCanvas, widthTiles, heightTiles)

	sprite := &Sprite{
		WidthTiles:     widthTiles,
		HeightTiles:    heightTiles,
		PrimaryBuffer:  primaryBuffer,
		EncodingMethod: EncodingMode(rawMethod),
	}
	interleave(&lowCanvas, &highCanvas, &sprite.Image)

	return sprite, nil
}

// DecodePath opens path and decodes it.
func DecodePath(path string) (*Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vsprite: unable to open sprite: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes s to w using method and primary as independent parameters:
// they are not read from s, so a sprite decoded with one encoding can be
// re-encoded with another.
func (s *Sprite) Encode(w io.Writer, method EncodingMode, primary int) error {
	var lowCanvas, highCanvas plane
	separate(&s.Image, &lowCanvas, &highCanvas)

	var lowCompact, highCompact plane
	removeOffset(&lowCanvas, &lowCompact, s.WidthTiles, s.HeightTiles)
	removeOffset(&highCanvas, &highCompact, s.WidthTiles, s.HeightTiles)

	var bp0, bp1 plane
	if primary == 0 {
		bp0, bp1 = lowCompact, highCompact
	} else {
		bp0, bp1 = highCompact, lowCompact
	}

	rawMethod := uint64(method)
	if rawMethod > 1 {
		n := s.WidthTiles * s.HeightTiles * 8
		for i := 0; i < n; i++ {
			bp1[i] = bp0[i] ^ bp1[i]
		}
	}
	if rawMethod != 2 {
		diffEncode(s.WidthTiles, s.HeightTiles, &bp1)
	}
	diffEncode(s.WidthTiles, s.HeightTiles, &bp0)

	scratch := make([]byte, CanvasWords*2)
	scratch[0] = byte(s.WidthTiles<<4 | s.HeightTiles)
	scratch[1] = byte(primary << 7)
	stream := newBitStream(scratch, 1, 6)

	if err := rleEncode(&bp0, s.WidthTiles, s.HeightTiles, stream); err != nil {
		return fmt.Errorf("vsprite: encode: %w", err)
	}
	bitcount := 2
	if rawMethod == 0 {
		bitcount = 1
	}
	if err := stream.writeBits(rawMethod, bitcount); err != nil {
		return fmt.Errorf("vsprite: encode: %w", err)
	}
	if err := rleEncode(&bp1, s.WidthTiles, s.HeightTiles, stream); err != nil {
		return fmt.Errorf("vsprite: encode: %w", err)
	}

	n := stream.byteIndex
	if stream.bitIndex != 7 {
		n++
	}

	_, err := w.Write(scratch[:n])
	return err
}

// EncodePath creates (or truncates) path and writes s to it.
func (s *Sprite) EncodePath(path string, method EncodingMode, primary int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vsprite: unable to create sprite: %w", err)
	}
	defer f.Close()

	return s.Encode(f, method, primary)
}
