package wavmarker

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

var errNilReader = errors.New("nil reader")

// ReadMarker opens the file at path and returns the marker stored in its
// first MarkerSize bytes.
func ReadMarker(path string) (Marker, error) {
	h, err := ReadHeader(path)
	if err != nil {
		return Marker{}, err
	}

	return h.Marker(), nil
}

// ReadMarkerFrom reads the header from r and returns its marker.
// r is not closed.
func ReadMarkerFrom(r io.Reader) (Marker, error) {
	h, err := ReadHeaderFrom(r)
	if err != nil {
		return Marker{}, err
	}

	return h.Marker(), nil
}

// ReadHeader opens the file at path and reads up to HeaderSize bytes from it.
// The file is closed before returning.
func ReadHeader(path string) (Header, error) {
	return readHeaderFile(path, os.Stat, func(name string) (fs.File, error) {
		return os.Open(name)
	})
}

// ReadHeaderFS is like ReadHeader but opens name from fsys.
func ReadHeaderFS(fsys fs.FS, name string) (Header, error) {
	return readHeaderFile(name, func(name string) (fs.FileInfo, error) {
		return fs.Stat(fsys, name)
	}, fsys.Open)
}

// ReadHeaderFrom reads up to HeaderSize bytes from r.
func ReadHeaderFrom(r io.Reader) (Header, error) {
	return readHeader(r, "")
}

func readHeaderFile(
	path string,
	stat func(string) (fs.FileInfo, error),
	open func(string) (fs.File, error),
) (Header, error) {
	// Opening a FIFO blocks until a writer shows up, so the mode is checked
	// before the open and again on the handle.
	info, err := stat(path)
	if err != nil {
		return Header{}, &FileOpenError{Path: path, Err: err}
	}

	if !info.Mode().IsRegular() {
		return Header{}, &FileOpenError{Path: path, Err: ErrNotRegularFile}
	}

	file, err := open(path)
	if err != nil {
		return Header{}, &FileOpenError{Path: path, Err: err}
	}
	defer file.Close()

	info, err = file.Stat()
	if err != nil {
		return Header{}, &FileOpenError{Path: path, Err: err}
	}

	if !info.Mode().IsRegular() {
		return Header{}, &FileOpenError{Path: path, Err: ErrNotRegularFile}
	}

	return readHeader(file, path)
}

func readHeader(r io.Reader, path string) (Header, error) {
	var h Header
	if r == nil {
		return h, &ReadError{Path: path, Err: errNilReader}
	}

	n, err := io.ReadFull(r, h.buf[:])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return Header{}, &ReadError{Path: path, Err: err}
	}

	h.n = n
	if h.n < MarkerSize {
		return Header{}, &TruncatedHeaderError{Path: path, Got: h.n}
	}

	return h, nil
}
