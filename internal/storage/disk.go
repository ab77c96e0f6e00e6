package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const urlPrefix = "/uploads/images"

// Disk stores uploaded gallery images under a static-served directory.
// Filenames combine a millisecond timestamp with a random suffix so
// concurrent uploads never collide.
type Disk struct {
	root string
}

// NewDisk creates the images directory under uploadDir if needed.
func NewDisk(uploadDir string) (*Disk, error) {
	root := filepath.Join(uploadDir, "images")
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{root: root}, nil
}

// Save writes the upload under a collision-free name and returns the public
// URL path the row will reference.
func (d *Disk) Save(src io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), randomSuffix(), ext)

	dst, err := os.Create(filepath.Join(d.root, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return urlPrefix + "/" + name, nil
}

// Remove deletes the backing file for a stored URL. A file that is already
// gone is not an error; the row is authoritative.
func (d *Disk) Remove(url string) error {
	name := path.Base(url)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(d.root, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:9]
}
