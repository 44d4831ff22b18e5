// Package tapefile reads and writes tape image files for the converter. The
// converter core works on in-memory buffers only, this package is the file
// boundary around it.
package tapefile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Read reads the whole tape file into memory. Tape images are small, even a
// full 128k Spectrum tape fits comfortably, so no streaming is attempted.
func Read(name string) ([]byte, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("can't read tape file: %w", err)
	}
	return raw, nil
}

// Write writes raw to the named file. The data is written to a temporary file
// in the target directory, synced to stable storage and renamed over the
// target, so a failed write never leaves a partially written file under the
// target name.
func Write(name string, raw []byte) error {
	dir := filepath.Dir(name)
	file, err := os.CreateTemp(dir, filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("can't create output file: %w", err)
	}
	tmpName := file.Name()

	if _, err := file.Write(raw); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("can't write output file: %w", err)
	}

	if err := sync(file); err != nil {
		_ = file.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("can't sync output file: %w", err)
	}

	if err := file.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("can't close output file: %w", err)
	}

	if err := os.Rename(tmpName, name); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("can't rename output file: %w", err)
	}

	return nil
}

// Target derives the default output path for the given input path by
// replacing the file extension with .tzx.
func Target(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".tzx"
}

// SameFile reports whether the two paths refer to the same existing file.
// A path that does not exist is never the same file.
func SameFile(a string, b string) (bool, error) {
	statA, err := os.Stat(a)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("can't stat %s: %w", a, err)
	}
	statB, err := os.Stat(b)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("can't stat %s: %w", b, err)
	}
	return os.SameFile(statA, statB), nil
}
