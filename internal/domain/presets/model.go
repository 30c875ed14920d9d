package presets

import (
	"errors"
	"strings"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/query"
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
)

// Name identifica un preset de filtro.
// @Enum water, mountain, disaster, reset
type Name string

const (
	Water    Name = "water"
	Mountain Name = "mountain"
	Disaster Name = "disaster"
	Reset    Name = "reset"
)

const DogType = "Dog"

// Rule es la definición declarativa de un preset.
// Reset no tiene restricciones (AnimalType vacío).
type Rule struct {
	Name  Name
	Label string

	AnimalType string
	Breeds     []string
	Sex        string
	MinWeeks   float64
	MaxWeeks   float64
}

// rules es la única fuente de verdad: tanto la query al store como el
// predicado en memoria se compilan desde acá.
var rules = []Rule{
	{
		Name:       Water,
		Label:      "Water Rescue",
		AnimalType: DogType,
		Breeds: []string{
			"Labrador Retriever",
			"Labrador Retriever Mix",
			"Chesapeake Bay Retriever",
			"Newfoundland",
			"Flat-Coated Retriever",
			"Golden Retriever",
		},
		Sex:      animals.SexIntactFemale,
		MinWeeks: 26,
		MaxWeeks: 156,
	},
	{
		Name:       Mountain,
		Label:      "Mountain or Wilderness Rescue",
		AnimalType: DogType,
		Breeds: []string{
			"German Shepherd",
			"German Shepherd Dog",
			"Alaskan Malamute",
			"Siberian Husky",
			"Old English Sheepdog",
			"Rottweiler",
			"Bernese Mountain Dog",
			"Australian Shepherd",
			"Belgian Malinois",
		},
		Sex:      animals.SexIntactMale,
		MinWeeks: 26,
		MaxWeeks: 156,
	},
	{
		Name:       Disaster,
		Label:      "Disaster Rescue or Individual Tracking",
		AnimalType: DogType,
		Breeds: []string{
			"Bloodhound",
			"Doberman Pinscher",
			"German Shepherd",
			"Golden Retriever",
			"Labrador Retriever",
			"Rottweiler",
			"Belgian Malinois",
		},
		Sex:      animals.SexIntactMale,
		MinWeeks: 20,
		MaxWeeks: 300,
	},
	{
		Name:  Reset,
		Label: "Reset (All)",
	},
}

// All devuelve los presets en orden de display (copia).
func All() []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, r.clone())
	}
	return out
}

// Lookup resuelve un preset por nombre. Vacío = reset.
func Lookup(name string) (Rule, error) {
	n := Name(strings.ToLower(strings.TrimSpace(name)))
	if n == "" {
		n = Reset
	}
	for _, r := range rules {
		if r.Name == n {
			return r.clone(), nil
		}
	}
	return Rule{}, ErrUnknownPreset
}

// Unconstrained indica que la regla no filtra nada.
func (r Rule) Unconstrained() bool {
	return r.AnimalType == "" && len(r.Breeds) == 0 && r.Sex == ""
}

// Query compila la regla al filtro del store.
func (r Rule) Query() query.Filter {
	if r.Unconstrained() {
		return query.All()
	}
	return query.All().And(
		query.Eq(animals.ColAnimalType, r.AnimalType),
		query.In(animals.ColBreed, r.Breeds...),
		query.Eq(animals.ColSexUponOutcome, r.Sex),
		query.Between(animals.ColAgeInWeeks, r.MinWeeks, r.MaxWeeks),
	)
}

// Predicate compila la misma regla a un predicado tipado sobre Record.
func (r Rule) Predicate() func(animals.Record) bool {
	if r.Unconstrained() {
		return func(animals.Record) bool { return true }
	}

	breeds := make(map[string]struct{}, len(r.Breeds))
	for _, b := range r.Breeds {
		breeds[b] = struct{}{}
	}
	animalType, sex, lo, hi := r.AnimalType, r.Sex, r.MinWeeks, r.MaxWeeks

	return func(rec animals.Record) bool {
		if rec.AnimalType != animalType || rec.SexUponOutcome != sex {
			return false
		}
		if _, ok := breeds[rec.Breed]; !ok {
			return false
		}
		age := rec.AgeUponOutcomeInWeeks
		return age != nil && *age >= lo && *age <= hi
	}
}

// Apply filtra en memoria un set ya cargado, sin ir al store.
func (r Rule) Apply(records []animals.Record) []animals.Record {
	match := r.Predicate()
	out := make([]animals.Record, 0, len(records))
	for _, rec := range records {
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (r Rule) clone() Rule {
	cp := r
	cp.Breeds = append([]string(nil), r.Breeds...)
	return cp
}
