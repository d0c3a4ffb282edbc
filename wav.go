package wavmarker

import (
	"errors"
	"fmt"
)

const (
	// HeaderSize is the size in bytes of a canonical RIFF/WAVE header.
	HeaderSize = 44
	// MarkerSize is the size in bytes of the marker stored at offset 0.
	MarkerSize = 4
)

var (
	// ErrTruncatedHeader is matched by every *TruncatedHeaderError.
	ErrTruncatedHeader = errors.New("header too short to hold a marker")
	// ErrNotRegularFile is returned (wrapped in a *FileOpenError) when the
	// path points to a directory, device or other non regular file.
	ErrNotRegularFile = errors.New("not a regular file")
	// ErrUnexpectedMarker is returned by Marker.Check when the marker isn't RIFF.
	ErrUnexpectedMarker = errors.New("unexpected marker")
)

// FileOpenError reports a path that could not be opened for reading.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// ReadError reports an I/O failure while reading the header. Reaching the end
// of the file early is not a ReadError, see TruncatedHeaderError.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to read header: %v", e.Err)
	}

	return fmt.Sprintf("failed to read header of %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// TruncatedHeaderError reports input holding fewer than MarkerSize bytes.
type TruncatedHeaderError struct {
	Path string
	// Got is the number of bytes that could be read.
	Got int
}

func (e *TruncatedHeaderError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: got %d of %d bytes", ErrTruncatedHeader, e.Got, MarkerSize)
	}

	return fmt.Sprintf("%s: %v: got %d of %d bytes", e.Path, ErrTruncatedHeader, e.Got, MarkerSize)
}

// Is makes errors.Is(err, ErrTruncatedHeader) work.
func (e *TruncatedHeaderError) Is(target error) bool {
	return target == ErrTruncatedHeader
}
