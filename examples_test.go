package wavmarker

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

func ExampleReadMarker() {
	dir, err := os.MkdirTemp("", "wavmarker")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.wav")
	if err := os.WriteFile(path, canonicalHeader(0), 0o600); err != nil {
		log.Fatal(err)
	}

	marker, err := ReadMarker(path)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("marker: %s, riff: %t\n", marker, marker.IsRIFF())
	// Output: marker: RIFF, riff: true
}

func ExampleReadMarkerFrom() {
	marker, err := ReadMarkerFrom(bytes.NewReader([]byte("FORM\x00\x00\x00\x0cAIFF")))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(marker, marker.Check() != nil)
	// Output: FORM true
}
