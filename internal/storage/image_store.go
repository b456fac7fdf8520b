// internal/storage/image_store.go
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	appErrors "github.com/adspark/adspark-backend/internal/errors"
)

// MaxImageBytes caps campaign image uploads at 16 MiB.
const MaxImageBytes = 16 * 1024 * 1024

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// ImageStore writes campaign images to a directory on disk. Filename
// collisions are resolved by appending an incrementing numeric suffix
// before the extension.
type ImageStore struct {
	Dir string
}

func NewImageStore(dir string) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &ImageStore{Dir: dir}, nil
}

// AllowedFile reports whether the filename carries a permitted image
// extension.
func AllowedFile(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Sanitize strips path components and unsafe characters from a client
// supplied filename.
func Sanitize(filename string) string {
	name := filepath.Base(filename)
	name = unsafeChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// Save writes the image under a collision-avoiding variant of filename and
// returns the stored name and absolute path.
func (s *ImageStore) Save(filename string, r io.Reader) (string, string, error) {
	name := Sanitize(filename)
	if name == "" || !AllowedFile(name) {
		return "", "", appErrors.NewInvalidArgument("invalid file type")
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate := name
	for counter := 1; ; counter++ {
		if _, err := os.Stat(filepath.Join(s.Dir, candidate)); os.IsNotExist(err) {
			break
		}
		candidate = fmt.Sprintf("%s_%d%s", base, counter, ext)
	}

	path, err := filepath.Abs(filepath.Join(s.Dir, candidate))
	if err != nil {
		return "", "", err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", "", fmt.Errorf("failed to store image: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", "", fmt.Errorf("failed to write image: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", "", err
	}

	return candidate, path, nil
}

// Path resolves a stored filename, rejecting traversal outside the store.
func (s *ImageStore) Path(filename string) (string, error) {
	name := filepath.Base(filename)
	if name != filename || name == "." || name == ".." {
		return "", appErrors.NewNotFound("image")
	}
	path := filepath.Join(s.Dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", appErrors.NewNotFound("image")
	}
	return path, nil
}

// Remove deletes a stored image; missing files are not an error.
func (s *ImageStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
