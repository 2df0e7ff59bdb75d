package sync

import (
	"context"

	"github.com/fisherypulse/councilpulse/internal/domain/entities"
	"github.com/fisherypulse/councilpulse/internal/infrastructure/external/sources"
)

// SourceAdapter is one external site or feed. Adapters fetch raw payloads and
// emit normalized batches; identity and change detection happen in the
// reconciler so every adapter gets the same idempotency guarantees.
type SourceAdapter interface {
	// Name is the stable registry key, also stored on every record and run
	Name() string

	// Kind is the dominant record family the adapter produces
	Kind() entities.RecordKind

	// Fetch retrieves and normalizes the source. Aggregating adapters may
	// return a batch alongside per-feed errors in Batch.FeedErrors.
	Fetch(ctx context.Context) (*sources.Batch, error)
}
