package wallpaper

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore handles all file system operations for the download directory.
// The directory is flat and the directory listing IS the cache index; no
// separate index is kept anywhere.
type FileStore struct {
	rootDir string
}

// NewFileStore creates a FileStore rooted at rootDir.
func NewFileStore(rootDir string) *FileStore {
	return &FileStore{rootDir: rootDir}
}

// Dir returns the root directory images are synchronized into.
func (fs *FileStore) Dir() string {
	return fs.rootDir
}

// EnsureDir creates the download directory if missing.
func (fs *FileStore) EnsureDir() error {
	if err := os.MkdirAll(fs.rootDir, 0755); err != nil {
		return fmt.Errorf("failed to create download directory %s: %w", fs.rootDir, err)
	}
	return nil
}

// validateID ensures the identifier does not contain path traversal characters.
func (fs *FileStore) validateID(id string) error {
	if id == "" || strings.Contains(id, "..") || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("invalid identifier %q: contains illegal characters", id)
	}
	return nil
}

// List returns the identifiers currently on disk. Subdirectories and their
// contents are ignored; only regular files in the root count as entries.
func (fs *FileStore) List() (map[string]bool, error) {
	entries, err := os.ReadDir(fs.rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list download directory %s: %w", fs.rootDir, err)
	}
	ids := make(map[string]bool, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ids[entry.Name()] = true
	}
	return ids, nil
}

// Write stores data under the given identifier. The bytes land in a
// temporary file first and are renamed into place, so a failed write never
// leaves a partial file holding the identifier's name.
func (fs *FileStore) Write(id string, data []byte) error {
	if err := fs.validateID(id); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(fs.rootDir, id+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", id, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", id, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file for %s: %w", id, err)
	}
	if err := os.Rename(tmpName, filepath.Join(fs.rootDir, id)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to commit %s: %w", id, err)
	}
	return nil
}

// Delete removes the file for the given identifier. A file that is already
// gone is not an error.
func (fs *FileStore) Delete(id string) error {
	if err := fs.validateID(id); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(fs.rootDir, id)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	return nil
}

// Clear removes every regular file from the download directory, keeping
// the directory itself and any subdirectories.
func (fs *FileStore) Clear() error {
	ids, err := fs.List()
	if err != nil {
		return err
	}
	for id := range ids {
		if err := fs.Delete(id); err != nil {
			return err
		}
	}
	return nil
}
