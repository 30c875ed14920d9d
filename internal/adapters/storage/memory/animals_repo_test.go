package memory

import (
	"context"
	"strings"
	"testing"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/query"
)

func TestSampleRecords_LoadsReferenceDataset(t *testing.T) {
	recs, err := SampleRecords()
	if err != nil {
		t.Fatalf("SampleRecords error: %v", err)
	}
	if len(recs) != 32 {
		t.Fatalf("expected 32 reference records, got %d", len(recs))
	}

	// fila 13: sin coordenadas; fila 23: edad no parseable
	if _, _, ok := recs[12].Coordinates(); ok {
		t.Fatalf("expected row 13 to lack coordinates")
	}
	if recs[22].AgeUponOutcomeInWeeks != nil {
		t.Fatalf("expected row 23 age to be coerced to missing")
	}
	if recs[21].Name != "" {
		t.Fatalf("expected row 22 to have empty name, got %q", recs[21].Name)
	}
}

func TestAnimalsRepo_Read_EmptyFilterReturnsAll(t *testing.T) {
	recs, _ := SampleRecords()
	repo := NewAnimalsRepo(recs)

	out, err := repo.Read(context.Background(), query.All(), animals.DefaultProjection)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(out) != len(recs) {
		t.Fatalf("expected %d, got %d", len(recs), len(out))
	}
}

func TestAnimalsRepo_Read_AppliesFilter(t *testing.T) {
	recs, _ := SampleRecords()
	repo := NewAnimalsRepo(recs)

	f := query.All().And(
		query.Eq(animals.ColAnimalType, "Cat"),
	)
	out, err := repo.Read(context.Background(), f, animals.DefaultProjection)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 cats, got %d", len(out))
	}
	for _, r := range out {
		if r.AnimalType != "Cat" {
			t.Fatalf("unexpected record %#v", r)
		}
	}
}

func TestAnimalsRepo_Read_FilterOnStoreIdentity(t *testing.T) {
	repo := NewAnimalsRepo([]animals.Record{{Breed: "Beagle"}})

	out, err := repo.Read(context.Background(), query.All().And(query.Eq(animals.IDField, "nope")), animals.DefaultProjection)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no match on random _id, got %d", len(out))
	}
}

func TestAnimalsRepo_Read_ProjectionClearsExcludedColumns(t *testing.T) {
	repo := NewAnimalsRepo([]animals.Record{{Breed: "Beagle", Name: "Snoopy"}})

	out, err := repo.Read(context.Background(), query.All(), query.Projection{Exclude: []string{animals.IDField, animals.ColName}})
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if out[0].Name != "" || out[0].Breed != "Beagle" {
		t.Fatalf("unexpected projection result %#v", out[0])
	}
}

func TestAnimalsRepo_Read_CanceledContext(t *testing.T) {
	repo := NewAnimalsRepo(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.Read(ctx, query.All(), animals.DefaultProjection); err == nil {
		t.Fatalf("expected error on canceled context")
	}
}

func TestLoadJSON(t *testing.T) {
	in := `[
		{"_id": {"$oid": "5f1"}, "breed": "Bloodhound", "animal_type": "Dog", "age_upon_outcome_in_weeks": 120.5, "location_lat": "30.1", "location_long": -97.2},
		{"breed": "Beagle", "age_upon_outcome_in_weeks": "n/a"}
	]`

	out, err := LoadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("LoadJSON error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
	if out[0].AgeUponOutcomeInWeeks == nil || *out[0].AgeUponOutcomeInWeeks != 120.5 {
		t.Fatalf("expected age 120.5, got %v", out[0].AgeUponOutcomeInWeeks)
	}
	if lat, lon, ok := out[0].Coordinates(); !ok || lat != 30.1 || lon != -97.2 {
		t.Fatalf("unexpected coordinates %v %v %v", lat, lon, ok)
	}
	if out[1].AgeUponOutcomeInWeeks != nil {
		t.Fatalf("expected unparseable age to be missing")
	}
}

func TestLoadCSV_EmptyInput(t *testing.T) {
	out, err := LoadCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadCSV error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no records, got %d", len(out))
	}
}
