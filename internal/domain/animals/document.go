package animals

import (
	"fmt"
	"math"
	"strings"

	"rescue-dashboard/internal/domain/query"
)

// FromDocument normaliza un documento crudo del store a Record.
// Las tres columnas numéricas (edad en semanas, lat, long) se coercionan:
// valores ausentes o no parseables quedan en nil, nunca fallan.
// El campo de identidad del store se ignora.
func FromDocument(doc map[string]any) Record {
	r := Record{
		AgeUponOutcome: text(doc[ColAgeUponOutcome]),
		AnimalID:       text(doc[ColAnimalID]),
		AnimalType:     text(doc[ColAnimalType]),
		Breed:          text(doc[ColBreed]),
		Color:          text(doc[ColColor]),
		DateOfBirth:    text(doc[ColDateOfBirth]),
		DateTime:       text(doc[ColDateTime]),
		MonthYear:      text(doc[ColMonthYear]),
		Name:           text(doc[ColName]),
		OutcomeSubtype: text(doc[ColOutcomeSubtype]),
		OutcomeType:    text(doc[ColOutcomeType]),
		SexUponOutcome: text(doc[ColSexUponOutcome]),

		LocationLat:           Coerce(doc[ColLocationLat]),
		LocationLong:          Coerce(doc[ColLocationLong]),
		AgeUponOutcomeInWeeks: Coerce(doc[ColAgeInWeeks]),
	}

	if n := Coerce(doc[ColRecNum]); n != nil {
		r.RecNum = int(*n)
	}
	return r
}

// Coerce convierte v a número opcional (equivalente a to_numeric con errors=coerce).
func Coerce(v any) *float64 {
	n, ok := query.Number(v)
	if !ok {
		return nil
	}
	return &n
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		// NaN llega desde exports de pandas para nombres vacíos
		if math.IsNaN(t) {
			return ""
		}
		return fmt.Sprint(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
