package ports

import (
	"context"
	"distance-annotator/internal/domain"
)

// Port: a boundary for reading the address table from a tabular source.
type TableSource interface {
	// LoadTable reads the full input table, validating that the required
	// address columns exist.
	LoadTable(ctx context.Context) (*domain.Table, error)
}

// Port: a boundary for persisting the annotated table.
type TableSink interface {
	// WriteTable persists the table plus exactly one annotation per row.
	WriteTable(ctx context.Context, table *domain.Table, annotations []domain.Annotation) error
}
