//go:build linux || darwin || freebsd

package wavmarker

import (
	"errors"
	"path/filepath"
	"syscall"
	"testing"
	"time"
)

func TestReadMarkerFIFO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipe.wav")
	if err := syscall.Mkfifo(path, 0o600); err != nil {
		t.Skipf("mkfifo: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := ReadMarker(path)
		done <- err
	}()

	select {
	case err := <-done:
		var openErr *FileOpenError
		if !errors.As(err, &openErr) || !errors.Is(err, ErrNotRegularFile) {
			t.Fatalf("expected *FileOpenError wrapping ErrNotRegularFile, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ReadMarker blocked on a FIFO without a writer")
	}
}
