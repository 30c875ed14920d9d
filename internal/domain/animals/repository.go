package animals

import (
	"context"

	"rescue-dashboard/internal/domain/query"
)

// Repository es el puerto de lectura contra el store de documentos.
// Solo lectura: este sistema no crea, actualiza ni borra outcomes.
type Repository interface {
	Read(ctx context.Context, f query.Filter, p query.Projection) ([]Record, error)
}

// DefaultProjection excluye la identidad nativa del store.
var DefaultProjection = query.Projection{Exclude: []string{IDField}}
