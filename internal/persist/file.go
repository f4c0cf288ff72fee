package persist

import (
	"context"
	"fmt"
	"os"
)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// FileStore keeps the cart snapshot in a single local file. Suitable for a
// single-process deployment without Redis.
type FileStore struct {
	path string
}

func (f FileStore) Get(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot file failed: %w", err)
	}
	return data, nil
}

func (f FileStore) Set(_ context.Context, data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot file failed: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot file failed: %w", err)
	}
	return nil
}
