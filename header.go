package wavmarker

import (
	"bytes"

	"github.com/go-audio/riff"
)

// Header holds the first HeaderSize bytes of a file, or fewer if the file
// was shorter than that.
type Header struct {
	buf [HeaderSize]byte
	n   int
}

// Len returns the number of header bytes that were read.
func (h Header) Len() int {
	return h.n
}

// Complete returns positively if all HeaderSize bytes were available.
func (h Header) Complete() bool {
	return h.n == HeaderSize
}

// Bytes returns a copy of the bytes that were read.
func (h Header) Bytes() []byte {
	return bytes.Clone(h.buf[:h.n])
}

// Marker returns the tag stored in bytes [0,4). A header holding fewer than
// MarkerSize bytes yields the zero Marker; the readers never return one.
func (h Header) Marker() Marker {
	var m Marker
	if h.n < MarkerSize {
		return m
	}

	copy(m[:], h.buf[:MarkerSize])

	return m
}

// IsWAVE returns positively if the header carries a RIFF marker followed by
// the WAVE format tag at offset 8.
func (h Header) IsWAVE() bool {
	if h.n < 12 {
		return false
	}

	return h.Marker().IsRIFF() && bytes.Equal(h.buf[8:12], riff.WavFormatID[:])
}
