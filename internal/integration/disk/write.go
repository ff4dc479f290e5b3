package disk

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrWriteFailure is returned when the destination cannot be written.
var ErrWriteFailure = errors.New("write failure")

const filePerm = 0o644

// WriteFile replaces path with data. The content goes to a temporary file in the
// same directory first, so a failed write never leaves a partial file at path.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	tmpName := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err = os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	return nil
}
