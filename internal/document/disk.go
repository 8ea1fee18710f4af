package document

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DiskStore writes uploads under a local directory served at /uploads.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

func (d *DiskStore) Save(fileName string, r io.Reader) (string, error) {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating upload directory: %w", err)
	}

	stored := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFileName(fileName))
	path := filepath.Join(d.dir, stored)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return "/uploads/" + stored, nil
}

func (d *DiskStore) Remove(fileURL string) error {
	name := strings.TrimPrefix(fileURL, "/uploads/")
	if name == fileURL || name == "" {
		// Not a disk-backed URL (e.g. a generated agreement), nothing to do.
		return nil
	}

	if err := os.Remove(filepath.Join(d.dir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing file: %w", err)
	}

	return nil
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)

	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}

		return '_'
	}, name)
}
