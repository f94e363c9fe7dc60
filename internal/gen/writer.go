package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file into its package directory. A file
// whose content could not be formatted is written next to the output as a
// debug sidecar instead, and reported as an error.
func WriteFiles(files []GeneratedFile) error {
	var errs []error

	for _, file := range files {
		if file.Unformatted {
			if err := writeDebugUnformatted(file.Dir, file.Filename, file.Content); err != nil {
				errs = append(errs, err)
			}

			errs = append(errs, fmt.Errorf("%s: not written, the generated code does not format", file.Path()))

			continue
		}

		if err := os.MkdirAll(file.Dir, dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(file.Path(), file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path(), err)
		}
	}

	return errors.Join(errs...)
}

// StaleFiles returns the files whose content differs from what is on disk,
// including files that do not exist yet.
func StaleFiles(files []GeneratedFile) ([]GeneratedFile, error) {
	var stale []GeneratedFile

	for _, file := range files {
		current, err := os.ReadFile(file.Path())

		switch {
		case errors.Is(err, fs.ErrNotExist):
			stale = append(stale, file)
		case err != nil:
			return nil, fmt.Errorf("reading file %s: %w", file.Path(), err)
		case !bytes.Equal(current, file.Content):
			stale = append(stale, file)
		}
	}

	return stale, nil
}
