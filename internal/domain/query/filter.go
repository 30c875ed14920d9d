package query

import (
	"math"
	"strconv"
	"strings"
)

// Op identifica el tipo de condición soportada por el store.
type Op string

const (
	OpEq      Op = "eq"
	OpIn      Op = "in"
	OpBetween Op = "between"
)

// Condition es una restricción sobre un único campo.
// Solo se usa el valor que corresponde a Op.
type Condition struct {
	Field string
	Op    Op

	Value  string   // OpEq
	Values []string // OpIn
	Min    float64  // OpBetween (inclusive)
	Max    float64  // OpBetween (inclusive)
}

// Filter es una conjunción de condiciones. Vacío = todos los documentos.
type Filter struct {
	Conditions []Condition
}

// Document es cualquier cosa que exponga campos por nombre (records tipados, docs crudos).
type Document interface {
	Field(name string) (any, bool)
}

// Projection selecciona campos a excluir del resultado.
type Projection struct {
	Exclude []string
}

func All() Filter { return Filter{} }

func Eq(field, value string) Condition {
	return Condition{Field: field, Op: OpEq, Value: value}
}

func In(field string, values ...string) Condition {
	cp := make([]string, len(values))
	copy(cp, values)
	return Condition{Field: field, Op: OpIn, Values: cp}
}

func Between(field string, lo, hi float64) Condition {
	return Condition{Field: field, Op: OpBetween, Min: lo, Max: hi}
}

// And devuelve un filtro nuevo; el receptor no se modifica.
func (f Filter) And(conds ...Condition) Filter {
	out := make([]Condition, 0, len(f.Conditions)+len(conds))
	out = append(out, f.Conditions...)
	out = append(out, conds...)
	return Filter{Conditions: out}
}

func (f Filter) IsEmpty() bool { return len(f.Conditions) == 0 }

// Fields lista los campos referenciados, en orden y sin repetir.
func (f Filter) Fields() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(f.Conditions))
	for _, c := range f.Conditions {
		if _, ok := seen[c.Field]; ok {
			continue
		}
		seen[c.Field] = struct{}{}
		out = append(out, c.Field)
	}
	return out
}

// Match evalúa el filtro en memoria.
func (f Filter) Match(doc Document) bool {
	for _, c := range f.Conditions {
		if !c.Match(doc) {
			return false
		}
	}
	return true
}

func (c Condition) Match(doc Document) bool {
	v, ok := doc.Field(c.Field)
	if !ok {
		return false
	}

	switch c.Op {
	case OpEq:
		s, ok := v.(string)
		return ok && s == c.Value
	case OpIn:
		s, ok := v.(string)
		if !ok {
			return false
		}
		for _, want := range c.Values {
			if s == want {
				return true
			}
		}
		return false
	case OpBetween:
		n, ok := Number(v)
		if !ok {
			return false
		}
		return n >= c.Min && n <= c.Max
	default:
		return false
	}
}

// Map devuelve la forma documento del filtro ({} para reset), útil para logs y la API.
func (f Filter) Map() map[string]any {
	out := make(map[string]any, len(f.Conditions))
	for _, c := range f.Conditions {
		switch c.Op {
		case OpEq:
			out[c.Field] = c.Value
		case OpIn:
			out[c.Field] = map[string]any{"$in": c.Values}
		case OpBetween:
			out[c.Field] = map[string]any{"$gte": c.Min, "$lte": c.Max}
		}
	}
	return out
}

func (p Projection) Excludes(field string) bool {
	for _, f := range p.Exclude {
		if f == field {
			return true
		}
	}
	return false
}

// Number intenta leer v como número finito.
// Acepta los tipos numéricos de Go, *float64, strings numéricos y tipos con Float64().
func Number(v any) (float64, bool) {
	var n float64
	switch t := v.(type) {
	case nil:
		return 0, false
	case float64:
		n = t
	case *float64:
		if t == nil {
			return 0, false
		}
		n = *t
	case float32:
		n = float64(t)
	case int:
		n = float64(t)
	case int32:
		n = float64(t)
	case int64:
		n = float64(t)
	case uint:
		n = float64(t)
	case uint32:
		n = float64(t)
	case uint64:
		n = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	case interface{ Float64() (float64, error) }:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		n = parsed
	case interface{ String() string }:
		// p.ej. Decimal128 del driver de Mongo
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t.String()), 64)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}

	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
