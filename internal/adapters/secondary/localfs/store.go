package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"relic-gallery-service/internal/core/domain"
	ports "relic-gallery-service/internal/core/ports/output"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".tiff": true,
	".webp": true,
}

type store struct {
	root string
}

// NewStore creates a disk-backed image store rooted at dir, creating the
// category subdirectories up front.
func NewStore(dir string) (ports.FileStore, error) {
	for _, category := range []string{ports.CategoryArtifacts, ports.CategoryInterpolations} {
		if err := os.MkdirAll(filepath.Join(dir, category), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &store{root: dir}, nil
}

// Save writes the upload under a timestamped, collision-free name and
// returns its store-relative path. The original name only contributes its
// extension, which must be on the image allow-list.
func (s *store) Save(ctx context.Context, category, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", domain.ErrUnsupportedFileType
	}

	name := fmt.Sprintf("%s_%s%s", time.Now().Format("20060102150405"), uuid.NewString(), ext)
	relPath := filepath.ToSlash(filepath.Join(category, name))
	fullPath := filepath.Join(s.root, category, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(fullPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return relPath, nil
}

// Remove deletes a stored file. Paths escaping the store root are rejected;
// a missing file is not an error.
func (s *store) Remove(path string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("path %q escapes upload root", path)
	}

	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

func (s *store) Root() string {
	return s.root
}
