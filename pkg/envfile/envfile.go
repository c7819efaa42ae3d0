// Package envfile reads env templates and writes realized env files.
//
// All operations go through an afero.Fs so callers can run them against the
// OS filesystem or an in-memory one.
package envfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// DefaultMaxSize is the template size ceiling used by the CLI.
const DefaultMaxSize int64 = 16 << 20

// Load reads the whole template at path. A maxSize of zero or less disables
// the size check.
func Load(fs afero.Fs, path string, maxSize int64) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateMissing, path)
		}
		return "", fmt.Errorf("%w: %v", ErrTemplateUnreadable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateUnreadable, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrTemplateUnreadable, path)
	}

	var r io.Reader = f
	if maxSize > 0 {
		// One extra byte tells an exact fit apart from an overflow
		r = io.LimitReader(f, maxSize+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateUnreadable, err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return "", fmt.Errorf("%w: %s is larger than %d bytes", ErrTemplateTooLarge, path, maxSize)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotUTF8, path)
	}

	return string(data), nil
}

// Write replaces the file at path with text. The content goes to a temporary
// sibling first and is renamed into place, so readers never see a partial file.
func Write(fs afero.Fs, path, text string) error {
	dir, base := filepath.Split(path)
	tmpPath := filepath.Join(dir, "."+base+"."+uuid.New().String()[:8]+".tmp")

	f, err := fs.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputUnwritable, err)
	}

	if err := writeAndClose(f, text); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrOutputUnwritable, err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("%w: %v", ErrOutputUnwritable, err)
	}

	return nil
}

func writeAndClose(f afero.File, text string) error {
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Remove deletes the file at path if it exists. It reports whether a file
// was removed. Directories are never removed.
func Remove(fs afero.Fs, path string) (bool, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%w: %s", ErrOutputIsDirectory, path)
	}
	if err := fs.Remove(path); err != nil {
		return false, err
	}
	return true, nil
}
