package mongo

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thaalam/admin-system/internal/core/domain"
	"github.com/thaalam/admin-system/internal/core/ports"
)

// ResourceRepository is a generic Mongo-backed repository for one entity
// collection. Search is a case-insensitive partial match over searchFields;
// filterFields maps accepted query keys to their bson fields, so unknown
// filter keys are ignored rather than passed through to the database.
type ResourceRepository[T domain.Record] struct {
	col          *mongo.Collection
	newRecord    func() T
	searchFields []string
	filterFields map[string]string
}

func NewResourceRepository[T domain.Record](
	db *mongo.Database,
	collection string,
	newRecord func() T,
	searchFields []string,
	filterFields map[string]string,
) *ResourceRepository[T] {
	return &ResourceRepository[T]{
		col:          db.Collection(collection),
		newRecord:    newRecord,
		searchFields: searchFields,
		filterFields: filterFields,
	}
}

func (r *ResourceRepository[T]) buildFilter(q ports.ListQuery) bson.M {
	filter := bson.M{}
	for key, value := range q.Filters {
		field, ok := r.filterFields[key]
		if !ok || value == "" {
			continue
		}
		filter[field] = value
	}
	if q.Search != "" && len(r.searchFields) > 0 {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(q.Search), Options: "i"}
		clauses := make([]bson.M, 0, len(r.searchFields))
		for _, f := range r.searchFields {
			clauses = append(clauses, bson.M{f: re})
		}
		filter["$or"] = clauses
	}
	return filter
}

// List returns one page of records matching the query plus the total count.
func (r *ResourceRepository[T]) List(ctx context.Context, q ports.ListQuery) ([]T, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := r.buildFilter(q)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := int64(q.Page-1) * int64(q.PageSize)
	if skip < 0 {
		skip = 0
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(q.PageSize))

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	records := make([]T, 0, q.PageSize)
	for cur.Next(ctx) {
		rec := r.newRecord()
		if err := cur.Decode(rec); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, total, cur.Err()
}

func (r *ResourceRepository[T]) FindByID(ctx context.Context, id string) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	rec := r.newRecord()
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(rec)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, domain.ErrNotFound
		}
		return zero, err
	}
	return rec, nil
}

func (r *ResourceRepository[T]) Insert(ctx context.Context, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// Update replaces the stored document wholesale, keyed by the record's id.
func (r *ResourceRepository[T]) Update(ctx context.Context, rec T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": rec.RecordID()}, rec)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ResourceRepository[T]) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates indexes for the sort key and every filterable field.
func (r *ResourceRepository[T]) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	for _, field := range r.filterFields {
		indexes = append(indexes, mongo.IndexModel{Keys: bson.D{{Key: field, Value: 1}}})
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
