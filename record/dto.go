package record

import "time"

// EntryDTO is the on-disk form of a best time
type EntryDTO struct {
	BestTick int       `msgpack:"best_tick"`
	SavedAt  time.Time `msgpack:"saved_at"`
}
