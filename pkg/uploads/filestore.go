package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pixelbin/pkg/apperror"
)

// allowedExtensions is the upload whitelist. This is a pure extension check,
// not content sniffing: a spoofed extension passes intake and fails later in
// thumbnail decoding.
var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// AllowedExtension reports whether the filename carries a whitelisted
// image extension.
func AllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// Extensions returns the upload whitelist in sorted order.
func Extensions() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// GenerateName returns a collision-resistant storage name carrying the
// original's extension. The client filename itself is never used, so two
// uploads can never collide on disk regardless of what the browser sends.
func GenerateName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s-%s%s", time.Now().UTC().Format("20060102150405"), uuid.NewString(), ext)
}

// FileStore reads and writes stored files under a single directory.
type FileStore struct {
	dir string
}

// NewFileStore creates the upload directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the store's root directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the filesystem path for a stored name. Names containing path
// separators or traversal are rejected; only names this package generated are
// ever valid.
func (s *FileStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", apperror.NewValidation("invalid file name", nil)
	}
	return filepath.Join(s.dir, name), nil
}

// Save writes the reader's contents under the given stored name.
func (s *FileStore) Save(name string, r io.Reader) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Remove deletes a stored file. Missing files are not an error.
func (s *FileStore) Remove(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists reports whether a stored name is present on disk.
func (s *FileStore) Exists(name string) bool {
	path, err := s.Path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
