package dashboard

import (
	"testing"

	"rescue-dashboard/internal/adapters/storage/memory"
	"rescue-dashboard/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) []animals.Record {
	t.Helper()
	recs, err := memory.SampleRecords()
	require.NoError(t, err)
	return recs
}

func breeds(names ...string) []animals.Record {
	out := make([]animals.Record, 0, len(names))
	for _, n := range names {
		out = append(out, animals.Record{Breed: n})
	}
	return out
}

func labels(slices []Slice) []string {
	out := make([]string, 0, len(slices))
	for _, s := range slices {
		out = append(out, s.Label)
	}
	return out
}

func sum(slices []Slice) int {
	n := 0
	for _, s := range slices {
		n += s.Count
	}
	return n
}

func TestDistribution_ReferenceDatasetTopEight(t *testing.T) {
	got := Distribution(sample(t), animals.ColBreed, DefaultTopN)

	want := []Slice{
		{Label: "Labrador Retriever Mix", Count: 3},
		{Label: "Golden Retriever", Count: 3},
		{Label: "German Shepherd", Count: 3},
		{Label: "Newfoundland", Count: 2},
		{Label: "Labrador Retriever", Count: 2},
		{Label: "Rottweiler", Count: 2},
		{Label: "Chesapeake Bay Retriever", Count: 1},
		{Label: "Flat-Coated Retriever", Count: 1},
		{Label: OtherLabel, Count: 15},
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Label, got[i].Label, "slice %d", i)
		assert.Equal(t, want[i].Count, got[i].Count, "slice %d", i)
	}
	assert.Equal(t, 32, sum(got))
	assert.InDelta(t, 15*100.0/32, got[8].Percent, 1e-9)
}

func TestDistribution_NoCollapseWhenWithinTopN(t *testing.T) {
	got := Distribution(breeds("A", "B", "A", "C"), animals.ColBreed, 3)

	assert.Equal(t, []string{"A", "B", "C"}, labels(got))
	assert.Equal(t, 4, sum(got))
}

func TestDistribution_CollapsesRemainderIntoSingleOther(t *testing.T) {
	got := Distribution(breeds("A", "A", "B", "C", "D", "E"), animals.ColBreed, 2)

	assert.Equal(t, []string{"A", "B", OtherLabel}, labels(got))
	assert.Equal(t, 3, got[2].Count)
	assert.Equal(t, 6, sum(got))
}

func TestDistribution_LiteralOtherFoldsIntoRemainder(t *testing.T) {
	got := Distribution(breeds("Other", "Other", "Other", "A", "B", "C"), animals.ColBreed, 2)

	others := 0
	for _, s := range got {
		if s.Label == OtherLabel {
			others++
		}
	}
	assert.Equal(t, 1, others)
	assert.Equal(t, []string{"A", "B", OtherLabel}, labels(got))
	assert.Equal(t, 4, got[2].Count)
	assert.Equal(t, 6, sum(got))
}

func TestDistribution_TiesKeepFirstSeenOrder(t *testing.T) {
	got := Distribution(breeds("Z", "Y", "X", "Y", "Z", "X"), animals.ColBreed, 8)
	assert.Equal(t, []string{"Z", "Y", "X"}, labels(got))
}

func TestDistribution_SkipsEmptyValues(t *testing.T) {
	got := Distribution(breeds("A", "", "A", ""), animals.ColBreed, 8)

	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Count)
	assert.Equal(t, 100.0, got[0].Percent)
}

func TestDistribution_Placeholders(t *testing.T) {
	want := []Slice{{Label: NoDataLabel, Count: 1, Percent: 100}}

	assert.Equal(t, want, Distribution(nil, animals.ColBreed, 8))
	assert.Equal(t, want, Distribution(breeds("", ""), animals.ColBreed, 8))
	assert.Equal(t, want, Distribution(breeds("A"), "weight", 8))
}

func TestDistribution_NumericColumn(t *testing.T) {
	got := Distribution(sample(t), animals.ColRecNum, 4)

	require.Len(t, got, 5)
	assert.Equal(t, "1", got[0].Label)
	assert.Equal(t, 28, got[4].Count)
}
