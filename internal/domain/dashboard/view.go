package dashboard

import (
	"context"
	"fmt"
	"time"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/presets"
	"rescue-dashboard/internal/platform/metrics"
)

// ViewRequest es una interacción del usuario: preset + estado de la tabla.
type ViewRequest struct {
	Preset      string     `json:"preset" validate:"max=32"`
	Refresh     bool       `json:"refresh"`
	SnapshotID  string     `json:"snapshot_id,omitempty" validate:"max=64"`
	Table       TableState `json:"table"`
	ChartColumn string     `json:"chart_column,omitempty" validate:"max=64"`
}

// ViewResponse trae todo lo que la página necesita redibujar, derivado del mismo snapshot.
type ViewResponse struct {
	SnapshotID string       `json:"snapshot_id"`
	Preset     presets.Name `json:"preset"`
	FetchedAt  time.Time    `json:"fetched_at"`
	Source     string       `json:"source"`
	Stale      bool         `json:"stale"`
	Error      string       `json:"error,omitempty"`

	Columns     []string         `json:"columns"`
	Rows        []animals.Record `json:"rows"`
	Page        int              `json:"page"`
	PageCount   int              `json:"page_count"`
	PageSize    int              `json:"page_size"`
	TotalRows   int              `json:"total_rows"`
	TotalLoaded int              `json:"total_loaded"`
	SelectedRow int              `json:"selected_row"`

	StyleDataConditional []ColumnStyle `json:"style_data_conditional"`

	Chart Chart   `json:"chart"`
	Map   MapView `json:"map"`
}

// View carga el snapshot del preset y deriva todos los paneles del mismo subset visible.
// Con SnapshotID se deriva de ese snapshot exacto (ver Pinned) y nunca se relee el store.
func (s *Service) View(ctx context.Context, req ViewRequest) (ViewResponse, error) {
	var (
		snap Snapshot
		err  error
	)
	if req.SnapshotID != "" {
		snap, err = s.Pinned(req.Preset, req.SnapshotID)
	} else {
		snap, err = s.Load(ctx, req.Preset, req.Refresh)
	}
	if err != nil {
		return ViewResponse{}, err
	}

	v, err := ApplyTable(snap.Records, req.Table, s.pageSize)
	if err != nil {
		return ViewResponse{}, err
	}
	metrics.ViewRowsVisible.Observe(float64(len(v.Visible)))

	column := req.ChartColumn
	if column == "" {
		column = animals.ColBreed
	}
	if !animals.HasColumn(column) {
		return ViewResponse{}, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	return ViewResponse{
		SnapshotID: snap.ID,
		Preset:     snap.Preset,
		FetchedAt:  snap.FetchedAt,
		Source:     snap.Source,
		Stale:      snap.Stale,
		Error:      snap.Error,

		Columns:     animals.Columns,
		Rows:        v.PageRows,
		Page:        v.Page,
		PageCount:   v.PageCount,
		PageSize:    v.PageSize,
		TotalRows:   len(v.Visible),
		TotalLoaded: len(snap.Records),
		SelectedRow: v.Selected,

		StyleDataConditional: v.Highlights,

		Chart: Chart{
			Title:  ChartTitle,
			Column: column,
			Slices: Distribution(v.Visible, column, s.topN),
		},
		Map: BuildMap(v),
	}, nil
}
