package ports

import (
	"context"

	"mysterycheck/domain/mystery"
)

// DatasetLoader produces the typed, immutable dataset snapshot the analysis
// core consumes. Implementations own all shape validation: malformed rows,
// missing required fields, and duplicate character names abort the load,
// since analysis cannot proceed on partially-typed data.
type DatasetLoader interface {
	Load(ctx context.Context) (*mystery.Dataset, error)
}
