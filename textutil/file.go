package textutil

import (
	"fmt"
	"io"
	"os"
)

// openFile opens path for reading. The caller owns the handle and must close
// it; failures wrap both ErrFileNotFound and the fs error.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	return f, nil
}

// readFile returns the whole content of path.
func readFile(path string) (content []byte, err error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	content, err = io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	return content, nil
}
