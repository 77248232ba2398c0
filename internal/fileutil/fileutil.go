// Package fileutil replaces and snapshots small files without ever leaving a
// half-written file at the destination path.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temporary file beside path and renames it
// over path, so readers see either the old or the new content.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	// Removing a renamed temp file fails harmlessly.
	defer os.Remove(tmpName)

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// Snapshot copies src to dst atomically, keeping the permission bits of src,
// and reads dst back to confirm its SHA-256 matches what was read from src.
// A mismatching dst is removed.
func Snapshot(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := WriteFileAtomic(dst, data, info.Mode().Perm()); err != nil {
		return err
	}

	written, err := os.ReadFile(dst)
	if err != nil {
		return fmt.Errorf("verify snapshot: %w", err)
	}
	want, got := sha256.Sum256(data), sha256.Sum256(written)
	if !bytes.Equal(want[:], got[:]) {
		_ = os.Remove(dst)
		return fmt.Errorf("verify snapshot: %s differs from %s", dst, src)
	}
	return nil
}
