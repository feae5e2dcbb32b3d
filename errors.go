package vsprite

import "errors"

// Typed failure kinds. Every error the decode/encode pipeline returns for
// a malformed stream or a full output buffer wraps one of these so callers
// can branch with errors.Is; I/O failures from the reader, writer or file
// system are returned without one.
var (
	// ErrHeaderInvalid is returned when the header's width or height nibble
	// is zero or greater than 7.
	ErrHeaderInvalid = errors.New("vsprite: width/height outside 1..7")

	// ErrUnexpectedEOF is returned when the stream runs out between packets.
	ErrUnexpectedEOF = errors.New("vsprite: unexpected end of stream")

	// ErrRunEOF is returned when the stream runs out while reading a RUN
	// packet's length prefix or value suffix.
	ErrRunEOF = errors.New("vsprite: end of stream while reading a RUN")

	// ErrDataEOF is returned when the stream runs out while reading a DATA
	// pair.
	ErrDataEOF = errors.New("vsprite: end of stream while reading a DATA pair")

	// ErrRunOverflow is returned when a decoded RUN count would push the
	// total emitted pairs past the bitplane's pixel count.
	ErrRunOverflow = errors.New("vsprite: RUN would overrun the bitplane")

	// ErrBufferFull is returned when an encode write runs past the
	// pre-allocated output scratch.
	ErrBufferFull = errors.New("vsprite: encode output exceeds scratch capacity")
)
