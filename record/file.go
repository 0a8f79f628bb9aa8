package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// FileStore handles save/load of the best time as a msgpack file
type FileStore struct {
	path string
	now  func() time.Time
}

// NewFileStore creates a store backed by the file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// Path returns the record file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the best tick; a missing or empty file yields ErrNoRecord
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, ErrNoRecord
		}
		return 0, fmt.Errorf("read record: %w", err)
	}

	var dto EntryDTO
	if err := msgpack.Unmarshal(data, &dto); err != nil {
		return 0, fmt.Errorf("decode record %s: %w", s.path, err)
	}
	if dto.BestTick <= 0 {
		return 0, ErrNoRecord
	}
	return dto.BestTick, nil
}

// Save writes the best tick through a temp file and rename
func (s *FileStore) Save(bestTick int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create record dir: %w", err)
	}

	data, err := msgpack.Marshal(&EntryDTO{BestTick: bestTick, SavedAt: s.now().UTC()})
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".record-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp record: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close record: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace record: %w", err)
	}
	return nil
}
