package vsprite

import "testing"

func TestInterleaveSeparateRoundTrip(t *testing.T) {
	var low, high plane
	for i := 0; i < CanvasWords; i++ {
		low[i] = byte((i*13 + 1) & 0xFF)
		high[i] = byte((i*29 + 7) & 0xFF)
	}

	var image [CanvasWords]uint16
	interleave(&low, &high, &image)

	var gotLow, gotHigh plane
	separate(&image, &gotLow, &gotHigh)

	if gotLow != low {
		t.Fatalf("separated low plane does not match original")
	}
	if gotHigh != high {
		t.Fatalf("separated high plane does not match original")
	}
}

func TestInterleaveBitPlacement(t *testing.T) {
	var low, high plane
	low[0] = 0x01 // bit0 of pixel 7 (the last pixel in the byte, shift 0)
	high[0] = 0x00

	var image [CanvasWords]uint16
	interleave(&low, &high, &image)

	if image[0] != 0x0001 {
		t.Fatalf("image[0] = %#04x, want 0x0001 (low bit of the last pixel set)", image[0])
	}
}
