package registry

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrTargetExists is returned when the copy destination is already present.
var ErrTargetExists = errors.New("already exists")

// CopyExample writes the example's source file into dir under its target
// name and returns the path written. An existing destination is never
// overwritten: the file is created exclusively and ErrTargetExists is
// returned, prefixed by the destination's base name.
func CopyExample(ex *ResolvedExample, dir string) (string, error) {
	dst := ex.TargetPath(dir)

	if _, err := os.Lstat(dst); err == nil {
		return "", fmt.Errorf("%s %w", filepath.Base(dst), ErrTargetExists)
	}

	if err := copyFile(ex.Source, dst); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%s %w", filepath.Base(dst), ErrTargetExists)
		}
		return "", err
	}
	return dst, nil
}

// StreamExample writes the example's source file to w unchanged.
func StreamExample(ex *ResolvedExample, w io.Writer) error {
	data, err := os.ReadFile(ex.Source)
	if err != nil {
		return fmt.Errorf("reading %s: %w", ex.Source, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", ex.Name, err)
	}
	return nil
}

// copyFile copies a single file from src to a new file dst, preserving
// permissions. dst must not exist.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	return writeExclusive(dst, srcInfo.Mode().Perm(), in)
}

// writeExclusive creates dst, which must not exist, and fills it from r.
// A failed write removes the partial file.
func writeExclusive(dst string, perm fs.FileMode, r io.Reader) error {
	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(dst)
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
