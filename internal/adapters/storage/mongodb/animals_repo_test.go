package mongodb

import (
	"testing"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/presets"
	"rescue-dashboard/internal/domain/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestToBSON_EmptyFilter(t *testing.T) {
	got := ToBSON(query.All())
	require.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestToBSON_PresetShape(t *testing.T) {
	rule, err := presets.Lookup("water")
	require.NoError(t, err)

	got := ToBSON(rule.Query())
	require.Len(t, got, 4)

	assert.Equal(t, bson.E{Key: animals.ColAnimalType, Value: "Dog"}, got[0])

	assert.Equal(t, animals.ColBreed, got[1].Key)
	in := got[1].Value.(bson.D)
	assert.Equal(t, "$in", in[0].Key)
	assert.Len(t, in[0].Value.(bson.A), len(rule.Breeds))

	assert.Equal(t, bson.E{Key: animals.ColSexUponOutcome, Value: animals.SexIntactFemale}, got[2])

	assert.Equal(t, "$expr", got[3].Key)
	assert.Equal(t, rangeExpr(animals.ColAgeInWeeks, 26, 156), got[3].Value)
}

func TestRangeExpr_ConvertsNumericStrings(t *testing.T) {
	expr := rangeExpr(animals.ColAgeInWeeks, 20, 300)

	and := expr[0].Value.(bson.A)
	require.Len(t, and, 2)
	gte := and[0].(bson.D)[0]
	assert.Equal(t, "$gte", gte.Key)

	args := gte.Value.(bson.A)
	assert.Equal(t, 20.0, args[1])

	cond := args[0].(bson.D)[0].Value.(bson.D)
	assert.Equal(t, "if", cond[0].Key)
	conv := cond[1].Value.(bson.D)[0]
	assert.Equal(t, "$convert", conv.Key)
	assert.Contains(t, conv.Value.(bson.D), bson.E{Key: "to", Value: "double"})
	assert.Contains(t, conv.Value.(bson.D), bson.E{Key: "onError", Value: nil})
	assert.Equal(t, bson.E{Key: "else", Value: "$" + animals.ColAgeInWeeks}, cond[2])
}

func TestToBSON_TwoRangesUseAnd(t *testing.T) {
	f := query.All().And(
		query.Between(animals.ColAgeInWeeks, 0, 100),
		query.Between(animals.ColLocationLat, 30, 31),
	)

	got := ToBSON(f)
	require.Len(t, got, 1)
	assert.Equal(t, "$and", got[0].Key)
}

func TestToBSON_RepeatedFieldUsesAnd(t *testing.T) {
	f := query.All().And(
		query.Between(animals.ColAgeInWeeks, 0, 100),
		query.Between(animals.ColAgeInWeeks, 50, 200),
	)

	got := ToBSON(f)
	require.Len(t, got, 1)
	assert.Equal(t, "$and", got[0].Key)
	assert.Len(t, got[0].Value.(bson.A), 2)
}

func TestProjectionToBSON(t *testing.T) {
	got := ProjectionToBSON(animals.DefaultProjection)
	assert.Equal(t, bson.D{{Key: "_id", Value: 0}}, got)
	assert.Empty(t, ProjectionToBSON(query.Projection{}))
}
