package dashboard

import (
	"fmt"
	"sort"
	"strings"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/query"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 500

	HighlightColor = "#D2F3FF"
)

// TableState es el estado de interacción de la tabla que manda el cliente.
// SelectedRow es un índice sobre el subset visible (todas las páginas).
type TableState struct {
	SortBy          string            `json:"sort_by,omitempty"`
	SortDesc        bool              `json:"sort_desc,omitempty"`
	Filters         map[string]string `json:"filters,omitempty"`
	Page            int               `json:"page"`
	PageSize        int               `json:"page_size" validate:"min=0,max=500"`
	SelectedRow     int               `json:"selected_row"`
	SelectedColumns []string          `json:"selected_columns,omitempty"`
}

// ColumnStyle resalta una columna seleccionada.
type ColumnStyle struct {
	ColumnID        string `json:"column_id"`
	BackgroundColor string `json:"background_color"`
}

// ViewState es la vista derivada: subset visible (filtro + orden), página actual y selección.
type ViewState struct {
	Visible  []animals.Record
	PageRows []animals.Record

	Page      int
	PageCount int
	PageSize  int

	// Selected es -1 cuando el subset visible está vacío.
	Selected   int
	Highlights []ColumnStyle
}

// Row devuelve la fila i del subset visible, con chequeo de rango.
func (v ViewState) Row(i int) (animals.Record, bool) {
	if i < 0 || i >= len(v.Visible) {
		return animals.Record{}, false
	}
	return v.Visible[i], true
}

// SelectedRecord devuelve la fila seleccionada (ya clampeada).
func (v ViewState) SelectedRecord() (animals.Record, bool) {
	return v.Row(v.Selected)
}

// ApplyTable deriva la vista a partir del record set y el estado de la tabla.
// records no se modifica.
func ApplyTable(records []animals.Record, st TableState, defaultPageSize int) (ViewState, error) {
	filters := make([]*columnFilter, 0, len(st.Filters))
	for col, expr := range st.Filters {
		f, err := parseFilter(col, expr)
		if err != nil {
			return ViewState{}, err
		}
		if f != nil {
			filters = append(filters, f)
		}
	}

	visible := make([]animals.Record, 0, len(records))
	for _, r := range records {
		if matchAll(filters, r) {
			visible = append(visible, r)
		}
	}

	if sortBy := strings.TrimSpace(st.SortBy); sortBy != "" {
		if !animals.HasColumn(sortBy) {
			return ViewState{}, fmt.Errorf("%w: %s", ErrUnknownColumn, sortBy)
		}
		sortRecords(visible, sortBy, st.SortDesc)
	}

	v := ViewState{Visible: visible}
	v.PageSize = pageSize(st.PageSize, defaultPageSize)
	v.PageCount = (len(visible) + v.PageSize - 1) / v.PageSize
	if v.PageCount == 0 {
		v.PageCount = 1
	}
	v.Page = clamp(st.Page, 0, v.PageCount-1)

	start := v.Page * v.PageSize
	end := min(start+v.PageSize, len(visible))
	v.PageRows = visible[start:end]

	v.Selected = -1
	if len(visible) > 0 {
		v.Selected = clamp(st.SelectedRow, 0, len(visible)-1)
	}
	v.Highlights = Highlights(st.SelectedColumns)

	return v, nil
}

// Highlights arma el estilo condicional de las columnas seleccionadas.
// Ninguna seleccionada = lista vacía.
func Highlights(columns []string) []ColumnStyle {
	out := make([]ColumnStyle, 0, len(columns))
	seen := map[string]struct{}{}
	for _, c := range columns {
		if !animals.HasColumn(c) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, ColumnStyle{ColumnID: c, BackgroundColor: HighlightColor})
	}
	return out
}

func matchAll(filters []*columnFilter, r animals.Record) bool {
	for _, f := range filters {
		if !f.match(r) {
			return false
		}
	}
	return true
}

// sortRecords ordena estable; los valores ausentes quedan al final en ambas direcciones.
func sortRecords(recs []animals.Record, column string, desc bool) {
	numeric := animals.IsNumeric(column)

	sort.SliceStable(recs, func(i, j int) bool {
		a, aok := sortKey(recs[i], column, numeric)
		b, bok := sortKey(recs[j], column, numeric)
		switch {
		case !aok || !bok:
			return aok && !bok
		case desc:
			return compareKeys(a, b) > 0
		default:
			return compareKeys(a, b) < 0
		}
	})
}

type key struct {
	n float64
	s string
}

func sortKey(r animals.Record, column string, numeric bool) (key, bool) {
	if numeric {
		v, _ := r.Field(column)
		n, ok := query.Number(v)
		return key{n: n}, ok
	}
	s, ok := valueLabel(r, column)
	return key{s: s}, ok
}

func compareKeys(a, b key) int {
	switch {
	case a.n < b.n:
		return -1
	case a.n > b.n:
		return 1
	default:
		return strings.Compare(a.s, b.s)
	}
}

func pageSize(requested, def int) int {
	if def <= 0 {
		def = DefaultPageSize
	}
	if requested <= 0 {
		return def
	}
	return min(requested, MaxPageSize)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
