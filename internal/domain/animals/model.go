package animals

// Nombres de columna tal como vienen del dataset de outcomes del shelter.
const (
	ColRecNum         = "rec_num"
	ColAgeUponOutcome = "age_upon_outcome"
	ColAnimalID       = "animal_id"
	ColAnimalType     = "animal_type"
	ColBreed          = "breed"
	ColColor          = "color"
	ColDateOfBirth    = "date_of_birth"
	ColDateTime       = "datetime"
	ColMonthYear      = "monthyear"
	ColName           = "name"
	ColOutcomeSubtype = "outcome_subtype"
	ColOutcomeType    = "outcome_type"
	ColSexUponOutcome = "sex_upon_outcome"
	ColLocationLat    = "location_lat"
	ColLocationLong   = "location_long"
	ColAgeInWeeks     = "age_upon_outcome_in_weeks"
)

// IDField es la identidad nativa del store. Nunca llega a la capa de display.
const IDField = "_id"

// Columns es el orden de columnas de la tabla.
var Columns = []string{
	ColRecNum,
	ColAgeUponOutcome,
	ColAnimalID,
	ColAnimalType,
	ColBreed,
	ColColor,
	ColDateOfBirth,
	ColDateTime,
	ColMonthYear,
	ColName,
	ColOutcomeSubtype,
	ColOutcomeType,
	ColSexUponOutcome,
	ColLocationLat,
	ColLocationLong,
	ColAgeInWeeks,
}

// Sex values usados por los presets.
const (
	SexIntactMale   = "Intact Male"
	SexIntactFemale = "Intact Female"
)

// Record representa un outcome de un animal del shelter.
// Edad y coordenadas son opcionales: nil = ausente o no parseable.
type Record struct {
	RecNum         int    `json:"rec_num"`
	AgeUponOutcome string `json:"age_upon_outcome"`
	AnimalID       string `json:"animal_id"`
	AnimalType     string `json:"animal_type"`
	Breed          string `json:"breed"`
	Color          string `json:"color"`
	DateOfBirth    string `json:"date_of_birth"`
	DateTime       string `json:"datetime"`
	MonthYear      string `json:"monthyear"`
	Name           string `json:"name"`
	OutcomeSubtype string `json:"outcome_subtype"`
	OutcomeType    string `json:"outcome_type"`
	SexUponOutcome string `json:"sex_upon_outcome"`

	LocationLat           *float64 `json:"location_lat"`
	LocationLong          *float64 `json:"location_long"`
	AgeUponOutcomeInWeeks *float64 `json:"age_upon_outcome_in_weeks"`
}

// HasColumn indica si name es una columna del schema.
func HasColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// IsNumeric indica si la columna se compara/ordena como número.
func IsNumeric(name string) bool {
	switch name {
	case ColRecNum, ColLocationLat, ColLocationLong, ColAgeInWeeks:
		return true
	default:
		return false
	}
}

// Field implementa query.Document.
// Los opcionales ausentes devuelven (nil, true): la columna existe pero no tiene valor.
func (r Record) Field(name string) (any, bool) {
	switch name {
	case ColRecNum:
		return r.RecNum, true
	case ColAgeUponOutcome:
		return r.AgeUponOutcome, true
	case ColAnimalID:
		return r.AnimalID, true
	case ColAnimalType:
		return r.AnimalType, true
	case ColBreed:
		return r.Breed, true
	case ColColor:
		return r.Color, true
	case ColDateOfBirth:
		return r.DateOfBirth, true
	case ColDateTime:
		return r.DateTime, true
	case ColMonthYear:
		return r.MonthYear, true
	case ColName:
		return r.Name, true
	case ColOutcomeSubtype:
		return r.OutcomeSubtype, true
	case ColOutcomeType:
		return r.OutcomeType, true
	case ColSexUponOutcome:
		return r.SexUponOutcome, true
	case ColLocationLat:
		return optional(r.LocationLat), true
	case ColLocationLong:
		return optional(r.LocationLong), true
	case ColAgeInWeeks:
		return optional(r.AgeUponOutcomeInWeeks), true
	default:
		return nil, false
	}
}

// Coordinates devuelve (lat, lon) solo si ambas están presentes.
func (r Record) Coordinates() (float64, float64, bool) {
	if r.LocationLat == nil || r.LocationLong == nil {
		return 0, 0, false
	}
	return *r.LocationLat, *r.LocationLong, true
}

// Clear deja la columna en su valor cero (para projections).
func (r *Record) Clear(name string) {
	switch name {
	case ColRecNum:
		r.RecNum = 0
	case ColAgeUponOutcome:
		r.AgeUponOutcome = ""
	case ColAnimalID:
		r.AnimalID = ""
	case ColAnimalType:
		r.AnimalType = ""
	case ColBreed:
		r.Breed = ""
	case ColColor:
		r.Color = ""
	case ColDateOfBirth:
		r.DateOfBirth = ""
	case ColDateTime:
		r.DateTime = ""
	case ColMonthYear:
		r.MonthYear = ""
	case ColName:
		r.Name = ""
	case ColOutcomeSubtype:
		r.OutcomeSubtype = ""
	case ColOutcomeType:
		r.OutcomeType = ""
	case ColSexUponOutcome:
		r.SexUponOutcome = ""
	case ColLocationLat:
		r.LocationLat = nil
	case ColLocationLong:
		r.LocationLong = nil
	case ColAgeInWeeks:
		r.AgeUponOutcomeInWeeks = nil
	}
}

func optional(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
