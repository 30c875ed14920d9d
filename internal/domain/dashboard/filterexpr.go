package dashboard

import (
	"errors"
	"fmt"
	"strings"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/query"
)

var (
	ErrInvalidFilter = errors.New("invalid filter expression")
	ErrUnknownColumn = errors.New("unknown column")
)

type filterOp string

const (
	opContains filterOp = "contains"
	opEq       filterOp = "="
	opNe       filterOp = "!="
	opLt       filterOp = "<"
	opLe       filterOp = "<="
	opGt       filterOp = ">"
	opGe       filterOp = ">="
)

// orden importa: los operadores de dos caracteres van primero
var symbolOps = []filterOp{opLe, opGe, opNe, opEq, opLt, opGt}

var wordOps = map[string]filterOp{
	"contains": opContains,
	"eq":       opEq,
	"ne":       opNe,
	"lt":       opLt,
	"le":       opLe,
	"gt":       opGt,
	"ge":       opGe,
}

// columnFilter es una expresión de filtro nativo de la tabla ya parseada.
type columnFilter struct {
	column  string
	op      filterOp
	operand string
	number  float64
	numeric bool
}

// parseFilter interpreta expresiones tipo "Lab", "= Dog", ">= 52", "contains Mix".
// Sin operador: "contains" para texto, "=" para columnas numéricas con operando numérico.
// Expresión vacía = sin filtro (nil, nil).
func parseFilter(column, expr string) (*columnFilter, error) {
	if !animals.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	op, rest := splitOp(expr)
	operand := unquote(strings.TrimSpace(rest))
	if operand == "" {
		return nil, fmt.Errorf("%w: %q on %s has no operand", ErrInvalidFilter, expr, column)
	}

	f := &columnFilter{column: column, op: op, operand: operand}
	f.number, f.numeric = query.Number(operand)

	if op == "" {
		f.op = opContains
		if animals.IsNumeric(column) && f.numeric {
			f.op = opEq
		}
	}
	return f, nil
}

func splitOp(expr string) (filterOp, string) {
	for _, op := range symbolOps {
		if strings.HasPrefix(expr, string(op)) {
			return op, expr[len(op):]
		}
	}
	if word, rest, ok := strings.Cut(expr, " "); ok {
		if op, known := wordOps[strings.ToLower(word)]; known {
			return op, rest
		}
	}
	return "", expr
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'' || first == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// match evalúa el filtro sobre un record. Valores ausentes nunca matchean.
func (f *columnFilter) match(r animals.Record) bool {
	v, _ := r.Field(f.column)
	if v == nil {
		return false
	}

	if f.op == opContains {
		s, ok := valueLabel(r, f.column)
		return ok && strings.Contains(s, f.operand)
	}

	cmp, ok := f.compare(r, v)
	if !ok {
		return false
	}
	switch f.op {
	case opEq:
		return cmp == 0
	case opNe:
		return cmp != 0
	case opLt:
		return cmp < 0
	case opLe:
		return cmp <= 0
	case opGt:
		return cmp > 0
	case opGe:
		return cmp >= 0
	default:
		return false
	}
}

// compare devuelve valor <=> operando; numérico si ambos lados lo son.
func (f *columnFilter) compare(r animals.Record, v any) (int, bool) {
	if f.numeric {
		if n, ok := query.Number(v); ok {
			switch {
			case n < f.number:
				return -1, true
			case n > f.number:
				return 1, true
			default:
				return 0, true
			}
		}
	}
	s, ok := valueLabel(r, f.column)
	if !ok {
		return 0, false
	}
	return strings.Compare(s, f.operand), true
}
