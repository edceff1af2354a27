package selector

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// binaryExtensions lists file extensions that are always treated as binary,
// skipping the content sniff.
var binaryExtensions = map[string]bool{
	".bin": true, ".exe": true, ".dll": true, ".so": true, ".dylib": true,
	".a": true, ".o": true, ".obj": true, ".class": true, ".pyc": true,
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true,
	".ico": true, ".webp": true, ".pdf": true, ".zip": true, ".tar": true,
	".gz": true, ".bz2": true, ".xz": true, ".7z": true, ".jar": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true, ".otf": true,
	".mp3": true, ".mp4": true, ".avi": true, ".mov": true, ".wasm": true,
	".db": true, ".sqlite": true,
}

// isBinaryFile checks if a file is likely to be binary by its extension or by
// reading its first few bytes and checking for null bytes or a high ratio of
// non-printable characters.
func isBinaryFile(filePath string) (bool, error) {
	if binaryExtensions[strings.ToLower(filepath.Ext(filePath))] {
		return true, nil
	}

	file, err := os.Open(filePath)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	buffer = buffer[:n]

	if len(buffer) == 0 {
		return false, nil // Empty files are considered text
	}

	// Null bytes are common in binary files
	if bytes.Contains(buffer, []byte{0}) {
		return true, nil
	}

	nonPrintable := 0
	for _, b := range buffer {
		if !isPrintable(b) {
			nonPrintable++
		}
	}

	// More than 30% non-printable characters suggests binary content
	return float64(nonPrintable)/float64(len(buffer)) > 0.3, nil
}

// isPrintable checks if a byte represents a printable ASCII character.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t'
}
