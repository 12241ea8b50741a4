package media

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Storage persists validated image bytes under a generated key and returns
// that key for the record's image field.
type Storage interface {
	Save(ctx context.Context, ext, contentType string, data []byte) (string, error)
	Remove(ctx context.Context, key string) error
}

// Key generates a storage key like "images/<uuid><ext>".
func Key(ext string) string {
	return filepath.Join("images", uuid.NewString()+ext)
}

// DirStorage writes images under a local directory.
type DirStorage struct{ Dir string }

func NewDirStorage(dir string) *DirStorage { return &DirStorage{Dir: dir} }

func (s *DirStorage) Save(_ context.Context, ext, _ string, data []byte) (string, error) {
	key := Key(ext)
	path := filepath.Join(s.Dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return key, nil
}

func (s *DirStorage) Remove(_ context.Context, key string) error {
	return os.Remove(filepath.Join(s.Dir, key))
}
