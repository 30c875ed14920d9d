package mongodb

import (
	"context"
	"fmt"

	"rescue-dashboard/internal/domain/animals"
	"rescue-dashboard/internal/domain/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnimalsRepo struct {
	coll *mongo.Collection
}

func NewAnimalsRepo(coll *mongo.Collection) *AnimalsRepo {
	return &AnimalsRepo{coll: coll}
}

func (r *AnimalsRepo) Read(ctx context.Context, f query.Filter, p query.Projection) ([]animals.Record, error) {
	opts := options.Find()
	if proj := ProjectionToBSON(p); len(proj) > 0 {
		opts.SetProjection(proj)
	}

	cur, err := r.coll.Find(ctx, ToBSON(f), opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.coll.Name(), err)
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.coll.Name(), err)
	}

	out := make([]animals.Record, 0, len(docs))
	for _, d := range docs {
		rec := animals.FromDocument(d)
		for _, col := range p.Exclude {
			rec.Clear(col)
		}
		out = append(out, rec)
	}
	return out, nil
}

// ToBSON traduce el filtro al documento de query de Mongo.
// Filtro vacío = {}. Si una clave se repite (mismo campo dos veces, o dos
// rangos, que van como $expr) se usa $and para no pisar claves del documento.
func ToBSON(f query.Filter) bson.D {
	if f.IsEmpty() {
		return bson.D{}
	}

	elems := make(bson.D, 0, len(f.Conditions))
	seen := make(map[string]bool, len(f.Conditions))
	repeated := false
	for _, c := range f.Conditions {
		e := conditionToBSON(c)
		repeated = repeated || seen[e.Key]
		seen[e.Key] = true
		elems = append(elems, e)
	}

	if !repeated {
		return elems
	}

	and := make(bson.A, 0, len(elems))
	for _, e := range elems {
		and = append(and, bson.D{e})
	}
	return bson.D{{Key: "$and", Value: and}}
}

func conditionToBSON(c query.Condition) bson.E {
	switch c.Op {
	case query.OpIn:
		vals := make(bson.A, 0, len(c.Values))
		for _, v := range c.Values {
			vals = append(vals, v)
		}
		return bson.E{Key: c.Field, Value: bson.D{{Key: "$in", Value: vals}}}
	case query.OpBetween:
		return bson.E{Key: "$expr", Value: rangeExpr(c.Field, c.Min, c.Max)}
	default:
		return bson.E{Key: c.Field, Value: c.Value}
	}
}

// rangeExpr compara el campo como número, igual que animals.FromDocument:
// un string numérico ("52") se convierte; uno inválido, null o ausente no matchea.
func rangeExpr(field string, lo, hi float64) bson.D {
	ref := "$" + field
	val := bson.D{{Key: "$cond", Value: bson.D{
		{Key: "if", Value: bson.D{{Key: "$eq", Value: bson.A{bson.D{{Key: "$type", Value: ref}}, "string"}}}},
		{Key: "then", Value: bson.D{{Key: "$convert", Value: bson.D{
			{Key: "input", Value: bson.D{{Key: "$trim", Value: bson.D{{Key: "input", Value: ref}}}}},
			{Key: "to", Value: "double"},
			{Key: "onError", Value: nil},
			{Key: "onNull", Value: nil},
		}}}},
		{Key: "else", Value: ref},
	}}}

	return bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "$gte", Value: bson.A{val, lo}}},
		bson.D{{Key: "$lte", Value: bson.A{val, hi}}},
	}}}
}

// ProjectionToBSON arma {campo: 0} para cada columna excluida.
func ProjectionToBSON(p query.Projection) bson.D {
	out := make(bson.D, 0, len(p.Exclude))
	for _, col := range p.Exclude {
		out = append(out, bson.E{Key: col, Value: 0})
	}
	return out
}
