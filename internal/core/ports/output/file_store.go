package ports

import (
	"context"
	"io"
)

// Upload categories map to subdirectories of the store root.
const (
	CategoryArtifacts      = "artifacts"
	CategoryInterpolations = "interpolations"
)

// FileStore persists uploaded images. Save returns the store-relative path
// under which the file can later be served or removed.
type FileStore interface {
	Save(ctx context.Context, category, originalName string, r io.Reader) (string, error)
	Remove(path string) error
	Root() string
}
