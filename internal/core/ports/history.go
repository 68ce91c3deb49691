package ports

import (
	"context"

	"github.com/OCNGill/what-do-those-song-lyrics-mean-gui/internal/core/domain"
)

// HistoryRepository stores completed interpretations. Recording is
// best-effort: the orchestrator logs and ignores write failures.
type HistoryRepository interface {
	Save(ctx context.Context, rec domain.InterpretationRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.InterpretationRecord, error)
}
