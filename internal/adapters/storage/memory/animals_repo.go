package memory

import (
	"context"
	"sync"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/query"

	"github.com/google/uuid"
)

// document simula un documento del store: identidad nativa + campos.
type document struct {
	ID     string
	Record animals.Record
}

type animalsRepo struct {
	mu   sync.RWMutex
	docs []document
}

// NewAnimalsRepo crea un store in-memory con los records dados.
// A cada documento se le asigna un _id propio del store (uuid).
func NewAnimalsRepo(records []animals.Record) animals.Repository {
	docs := make([]document, 0, len(records))
	for _, r := range records {
		docs = append(docs, document{ID: uuid.NewString(), Record: r})
	}
	return &animalsRepo{docs: docs}
}

func (r *animalsRepo) Read(ctx context.Context, f query.Filter, p query.Projection) ([]animals.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Record, 0)
	for _, d := range r.docs {
		if !f.Match(d) {
			continue
		}
		rec := d.Record
		for _, col := range p.Exclude {
			rec.Clear(col)
		}
		out = append(out, rec)
	}
	return out, nil
}

// Field expone también el _id, como haría un store real.
func (d document) Field(name string) (any, bool) {
	if name == animals.IDField {
		return d.ID, true
	}
	return d.Record.Field(name)
}
