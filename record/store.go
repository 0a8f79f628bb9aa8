package record

import "errors"

// ErrNoRecord is returned by Load when no best time has been stored yet
var ErrNoRecord = errors.New("no best time recorded")

// Store persists the best completion tick across sessions
type Store interface {
	Load() (int, error)
	Save(bestTick int) error
}

// MemoryStore keeps the record for the lifetime of the process
type MemoryStore struct {
	bestTick int
	saved    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (int, error) {
	if !s.saved {
		return 0, ErrNoRecord
	}
	return s.bestTick, nil
}

func (s *MemoryStore) Save(bestTick int) error {
	s.bestTick = bestTick
	s.saved = true
	return nil
}

// LoadOr returns the stored best tick, or fallback when nothing usable is stored
func LoadOr(s Store, fallback int) (int, error) {
	if s == nil {
		return fallback, nil
	}
	best, err := s.Load()
	if err != nil {
		if errors.Is(err, ErrNoRecord) {
			return fallback, nil
		}
		return fallback, err
	}
	return best, nil
}
