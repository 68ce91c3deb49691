// Package memory holds the default history repository: a small in-process
// ring of recent interpretations. Nothing survives a restart, which keeps
// the default install free of on-disk state.
package memory

import (
	"context"
	"sync"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/ports"
)

const defaultCapacity = 50

// History keeps the most recent interpretations in memory.
type History struct {
	mu       sync.Mutex
	records  []domain.InterpretationRecord
	capacity int
}

var _ ports.HistoryRepository = (*History)(nil)

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	return &History{capacity: capacity}
}

func (h *History) Save(_ context.Context, rec domain.InterpretationRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, rec)
	if len(h.records) > h.capacity {
		h.records = h.records[len(h.records)-h.capacity:]
	}
	return nil
}

func (h *History) ListRecent(_ context.Context, limit int) ([]domain.InterpretationRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if limit < 1 || limit > len(h.records) {
		limit = len(h.records)
	}

	out := make([]domain.InterpretationRecord, 0, limit)
	for i := len(h.records) - 1; i >= len(h.records)-limit; i-- {
		out = append(out, h.records[i])
	}
	return out, nil
}
