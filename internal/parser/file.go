package parser

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrNoFile is returned when no file name was given.
	ErrNoFile = errors.New("no file given")
	// ErrFileNotFound is returned when the named file does not exist.
	ErrFileNotFound = errors.New("the file was not found")
)

// ReadSourceFile reads the whole of a COBOL source file into memory.
func ReadSourceFile(filename string) (string, error) {
	if filename == "" {
		return "", ErrNoFile
	}

	info, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrFileNotFound, filename)
		}
		return "", fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory, not a source file", filename)
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), nil
}
