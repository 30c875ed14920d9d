package dashboard

import (
	"sort"
	"strconv"

	"rescue-dashboard/internal/domain/animals"
)

const (
	DefaultTopN = 8
	OtherLabel  = "Other"
	NoDataLabel = "No data"
)

// Slice es un bucket del gráfico de distribución.
type Slice struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// Distribution agrupa records por column y conserva los topN valores más frecuentes.
//   - valores vacíos o ausentes no cuentan
//   - orden: cantidad descendente; empates en orden de primera aparición
//   - el resto se junta en un único bucket "Other"
//   - subset vacío o columna desconocida: un único bucket "No data" con valor 1
//
// La suma de los buckets es siempre igual a la cantidad de filas con valor.
func Distribution(records []animals.Record, column string, topN int) []Slice {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if !animals.HasColumn(column) {
		return placeholder()
	}

	type bucket struct {
		label string
		count int
	}
	index := map[string]int{}
	buckets := make([]bucket, 0)
	total := 0

	for _, r := range records {
		label, ok := valueLabel(r, column)
		if !ok {
			continue
		}
		total++
		if i, seen := index[label]; seen {
			buckets[i].count++
			continue
		}
		index[label] = len(buckets)
		buckets = append(buckets, bucket{label: label, count: 1})
	}
	if total == 0 {
		return placeholder()
	}

	collapse := len(buckets) > topN
	if collapse {
		// un valor que se llama literalmente "Other" va al bucket de resto,
		// así nunca hay dos slices con la misma etiqueta
		kept := buckets[:0]
		for _, b := range buckets {
			if b.label != OtherLabel {
				kept = append(kept, b)
			}
		}
		buckets = kept
	}

	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].count > buckets[j].count })

	if len(buckets) > topN {
		buckets = buckets[:topN]
	}

	out := make([]Slice, 0, len(buckets)+1)
	shown := 0
	for _, b := range buckets {
		out = append(out, Slice{Label: b.label, Count: b.count})
		shown += b.count
	}
	if collapse && total > shown {
		out = append(out, Slice{Label: OtherLabel, Count: total - shown})
	}

	for i := range out {
		out[i].Percent = float64(out[i].Count) * 100 / float64(total)
	}
	return out
}

func placeholder() []Slice {
	return []Slice{{Label: NoDataLabel, Count: 1, Percent: 100}}
}

// valueLabel devuelve el valor de la columna como texto; false si está vacío.
func valueLabel(r animals.Record, column string) (string, bool) {
	v, ok := r.Field(column)
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, t != ""
	case int:
		return strconv.Itoa(t), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
