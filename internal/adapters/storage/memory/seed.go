package memory

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"rescue-dashboard/internal/domain/animals"

	"github.com/goccy/go-json"
)

//go:embed seed/outcomes.csv
var seedFS embed.FS

var (
	ErrUnsupportedSeed = errors.New("unsupported seed format")
)

// SampleRecords devuelve el dataset de referencia embebido (modo dev y tests).
func SampleRecords() ([]animals.Record, error) {
	b, err := seedFS.ReadFile("seed/outcomes.csv")
	if err != nil {
		return nil, err
	}
	return LoadCSV(bytes.NewReader(b))
}

// LoadFile carga un seed .csv o .json (array de documentos).
func LoadFile(path string) ([]animals.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".json":
		return LoadJSON(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSeed, path)
	}
}

// LoadCSV lee un export con header. Cada fila pasa por animals.FromDocument,
// así que las columnas numéricas vacías o inválidas quedan como ausentes.
func LoadCSV(r io.Reader) ([]animals.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []animals.Record{}, nil
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	out := make([]animals.Record, 0)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(out)+2, err)
		}

		doc := make(map[string]any, len(header))
		for i, col := range header {
			if i < len(row) {
				doc[col] = row[i]
			}
		}
		out = append(out, animals.FromDocument(doc))
	}
	return out, nil
}

// LoadJSON lee un array de documentos (p.ej. mongoexport --jsonArray).
func LoadJSON(r io.Reader) ([]animals.Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var docs []map[string]any
	if err := dec.Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode json seed: %w", err)
	}

	out := make([]animals.Record, 0, len(docs))
	for _, d := range docs {
		out = append(out, animals.FromDocument(d))
	}
	return out, nil
}
