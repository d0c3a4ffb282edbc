// Package wavmarker reads the header of RIFF/WAVE files and extracts the
// 4-byte marker stored at offset 0.
//
// A conforming WAVE file starts with a 44 byte header whose first four bytes
// are the ASCII tag "RIFF". The readers in this package never require the
// whole header: any file holding at least MarkerSize bytes yields a Marker,
// shorter files fail with a *TruncatedHeaderError.
//
// The file handle opened by ReadMarker and ReadHeader is always closed
// before the call returns, whatever the outcome.
package wavmarker
