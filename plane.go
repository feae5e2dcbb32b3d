package vsprite

// canvasTiles is the fixed canvas size every sprite is centered into: 7x7
// tiles of 8x8 pixels each.
const canvasTiles = 7

// CanvasWords is the number of uint16 words in a full two-bitplane canvas
// image: 7 tiles wide * 8 pixels/tile rows * 7 tiles tall.
const CanvasWords = canvasTiles * 8 * canvasTiles

// plane is a single 1-bit-per-pixel bitplane buffer. It is sized to hold a
// full canvas column-major (canvasTiles*8 bytes per column, one byte of
// eight pixels per pixel row) when used by PlaneInterleaver, or a
// compact widthTiles*heightTiles*8-byte region addressed with stride
// heightTiles*8 when used by RleCodec and CanvasOffset — the same reuse
// the original codec makes of a single BUFFER_SIZE-sized scratch buffer.
type plane [CanvasWords]byte
