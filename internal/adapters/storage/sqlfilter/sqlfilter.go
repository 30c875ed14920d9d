package sqlfilter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/query"

	"github.com/google/uuid"
)

// Table es la tabla relacional equivalente a la colección de outcomes.
const Table = "animal_outcomes"

var (
	ErrUnknownColumn        = errors.New("unknown column")
	ErrUnsupportedCondition = errors.New("unsupported condition")
)

// Dialect cubre lo poco que difiere entre Postgres y SQLite.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

func (d Dialect) floatType() string {
	if d == Postgres {
		return "DOUBLE PRECISION"
	}
	return "REAL"
}

// Where traduce el filtro a una cláusula WHERE parametrizada.
// Filtro vacío = "" (todos los registros). Solo se aceptan columnas del schema
// y el _id del store, así que nunca se interpola input arbitrario.
func Where(d Dialect, f query.Filter) (string, []any, error) {
	if f.IsEmpty() {
		return "", nil, nil
	}

	parts := make([]string, 0, len(f.Conditions))
	args := make([]any, 0, len(f.Conditions))

	next := func(v any) string {
		args = append(args, v)
		return d.placeholder(len(args))
	}

	for _, c := range f.Conditions {
		col, err := column(c.Field)
		if err != nil {
			return "", nil, err
		}
		numeric := animals.IsNumeric(c.Field)

		switch c.Op {
		case query.OpEq:
			if numeric {
				return "", nil, fmt.Errorf("%w: eq on numeric column %s", ErrUnsupportedCondition, c.Field)
			}
			parts = append(parts, col+" = "+next(c.Value))
		case query.OpIn:
			if numeric {
				return "", nil, fmt.Errorf("%w: in on numeric column %s", ErrUnsupportedCondition, c.Field)
			}
			if len(c.Values) == 0 {
				// IN () no es SQL válido; un set vacío no selecciona nada
				parts = append(parts, "1 = 0")
				continue
			}
			ph := make([]string, 0, len(c.Values))
			for _, v := range c.Values {
				ph = append(ph, next(v))
			}
			parts = append(parts, col+" IN ("+strings.Join(ph, ", ")+")")
		case query.OpBetween:
			if !numeric {
				return "", nil, fmt.Errorf("%w: range on text column %s", ErrUnsupportedCondition, c.Field)
			}
			parts = append(parts, col+" BETWEEN "+next(c.Min)+" AND "+next(c.Max))
		default:
			return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedCondition, c.Op)
		}
	}

	return "WHERE " + strings.Join(parts, " AND "), args, nil
}

// Select arma el SELECT completo. La projection se aplica al escanear
// (ver Scan); el id del store nunca se selecciona.
func Select(d Dialect, f query.Filter) (string, []any, error) {
	where, args, err := Where(d, f)
	if err != nil {
		return "", nil, err
	}

	cols := make([]string, 0, len(animals.Columns))
	for _, c := range animals.Columns {
		cols = append(cols, quote(c))
	}

	q := "SELECT " + strings.Join(cols, ", ") + " FROM " + Table
	if where != "" {
		q += " " + where
	}
	q += " ORDER BY " + quote(animals.ColRecNum)
	return q, args, nil
}

// Read ejecuta Select y escanea; lo usan los repos de postgres y sqlite.
func Read(ctx context.Context, db *sql.DB, d Dialect, f query.Filter, p query.Projection) ([]animals.Record, error) {
	q, args, err := Select(d, f)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return Scan(rows, p)
}

// Scan lee filas en el orden de animals.Columns. NULL = valor cero / ausente.
func Scan(rows *sql.Rows, p query.Projection) ([]animals.Record, error) {
	out := make([]animals.Record, 0)
	for rows.Next() {
		var (
			recNum                                        sql.NullInt64
			age, id, typ, breed, color, dob, dt, my, name sql.NullString
			subtype, outcome, sex                         sql.NullString
			lat, long, weeks                              sql.NullFloat64
		)
		if err := rows.Scan(
			&recNum, &age, &id, &typ, &breed, &color, &dob, &dt, &my, &name,
			&subtype, &outcome, &sex, &lat, &long, &weeks,
		); err != nil {
			return nil, fmt.Errorf("scan %s: %w", Table, err)
		}

		r := animals.Record{
			RecNum:         int(recNum.Int64),
			AgeUponOutcome: age.String,
			AnimalID:       id.String,
			AnimalType:     typ.String,
			Breed:          breed.String,
			Color:          color.String,
			DateOfBirth:    dob.String,
			DateTime:       dt.String,
			MonthYear:      my.String,
			Name:           name.String,
			OutcomeSubtype: subtype.String,
			OutcomeType:    outcome.String,
			SexUponOutcome: sex.String,

			LocationLat:           nullFloat(lat),
			LocationLong:          nullFloat(long),
			AgeUponOutcomeInWeeks: nullFloat(weeks),
		}
		for _, col := range p.Exclude {
			r.Clear(col)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTable devuelve el DDL idempotente de la tabla de outcomes.
func CreateTable(d Dialect) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS " + Table + " (\n")
	b.WriteString("\tid TEXT PRIMARY KEY")
	for _, c := range animals.Columns {
		b.WriteString(",\n\t" + quote(c) + " ")
		switch {
		case c == animals.ColRecNum:
			b.WriteString("INTEGER NOT NULL DEFAULT 0")
		case animals.IsNumeric(c):
			b.WriteString(d.floatType())
		default:
			b.WriteString("TEXT NOT NULL DEFAULT ''")
		}
	}
	b.WriteString("\n)")
	return b.String()
}

// Count devuelve la cantidad de filas de la tabla (seed solo si está vacía).
func Count(ctx context.Context, db *sql.DB) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+Table).Scan(&n)
	return n, err
}

// Insert carga records en una transacción. Cada fila recibe un id propio.
func Insert(ctx context.Context, db *sql.DB, d Dialect, records []animals.Record) error {
	cols := make([]string, 0, len(animals.Columns)+1)
	ph := make([]string, 0, len(animals.Columns)+1)
	cols = append(cols, "id")
	ph = append(ph, d.placeholder(1))
	for i, c := range animals.Columns {
		cols = append(cols, quote(c))
		ph = append(ph, d.placeholder(i+2))
	}
	stmt := "INSERT INTO " + Table + " (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(ph, ", ") + ")"

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, r := range records {
		args := make([]any, 0, len(cols))
		args = append(args, uuid.NewString())
		for _, c := range animals.Columns {
			v, _ := r.Field(c)
			args = append(args, v)
		}
		if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
			return fmt.Errorf("insert %s rec_num=%d: %w", Table, r.RecNum, err)
		}
	}
	return tx.Commit()
}

// column valida contra el schema; la identidad del store (_id) no es filtrable.
func column(field string) (string, error) {
	if !animals.HasColumn(field) {
		return "", fmt.Errorf("%w: %s", ErrUnknownColumn, field)
	}
	return quote(field), nil
}

func quote(name string) string { return `"` + name + `"` }

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// EnsureSchema crea la tabla si no existe.
func EnsureSchema(ctx context.Context, db *sql.DB, d Dialect) error {
	if _, err := db.ExecContext(ctx, CreateTable(d)); err != nil {
		return fmt.Errorf("create %s: %w", Table, err)
	}
	return nil
}

// SeedIfEmpty inserta records solo si la tabla está vacía. Devuelve cuántos insertó.
func SeedIfEmpty(ctx context.Context, db *sql.DB, d Dialect, records []animals.Record) (int, error) {
	n, err := Count(ctx, db)
	if err != nil {
		return 0, err
	}
	if n > 0 || len(records) == 0 {
		return 0, nil
	}
	if err := Insert(ctx, db, d, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
