package wavmarker

import (
	"fmt"

	"github.com/go-audio/riff"
)

// Marker is the 4-byte tag found at the very start of a RIFF container.
type Marker [MarkerSize]byte

// String returns the marker as a 4 character tag.
func (m Marker) String() string {
	return string(m[:])
}

// IsRIFF returns positively if the marker is the RIFF container ID.
func (m Marker) IsRIFF() bool {
	return m == riff.RiffID
}

// Check returns an error unless the marker identifies a RIFF container.
// The error matches both ErrUnexpectedMarker and riff.ErrFmtNotSupported.
func (m Marker) Check() error {
	if m.IsRIFF() {
		return nil
	}

	return fmt.Errorf("%w %q - %w", ErrUnexpectedMarker, m.String(), riff.ErrFmtNotSupported)
}
