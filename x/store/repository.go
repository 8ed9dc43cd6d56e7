// Package store is a postgres-backed saved-object store satisfying
// the engine's read surface. Deployments against an OpenSearch-backed
// store supply their own client and the querydsl compiler instead.
package store

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/osdash/warden/core"
)

var tracer = otel.Tracer("store")

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) core.StoreClient {
	return &repository{db}
}

func (r *repository) Get(ctx context.Context, objectType string, id string) (core.SavedObject, error) {
	ctx, span := tracer.Start(ctx, "Store.Repository.Get")
	defer span.End()

	var object core.SavedObject
	err := r.db.WithContext(ctx).Where("type = ? AND id = ?", objectType, id).First(&object).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.SavedObject{}, core.NewErrorNotFound()
		}
		return core.SavedObject{}, err
	}

	return object, nil
}

// BulkGet fetches every referenced object. A missing object is an
// error: permission checks must not quietly evaluate a shorter list
// than the caller asked about.
func (r *repository) BulkGet(ctx context.Context, refs []core.ObjectRef) ([]core.SavedObject, error) {
	ctx, span := tracer.Start(ctx, "Store.Repository.BulkGet")
	defer span.End()

	if len(refs) == 0 {
		return []core.SavedObject{}, nil
	}

	pairs := make([][]any, 0, len(refs))
	for _, ref := range refs {
		pairs = append(pairs, []any{ref.Type, ref.ID})
	}

	var objects []core.SavedObject
	err := r.db.WithContext(ctx).Where("(type, id) IN ?", pairs).Find(&objects).Error
	if err != nil {
		return nil, err
	}

	if len(objects) != len(refs) {
		return nil, core.NewErrorNotFound()
	}

	return objects, nil
}

func (r *repository) Find(ctx context.Context, objectTypes []string, query core.Query, limit int) ([]core.SavedObject, error) {
	ctx, span := tracer.Start(ctx, "Store.Repository.Find")
	defer span.End()

	compiled, err := compileQuery(query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compile query")
	}

	tx := r.db.WithContext(ctx).Where(compiled.expr, compiled.args...)
	if len(objectTypes) > 0 {
		tx = tx.Where("type IN ?", objectTypes)
	}
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var objects []core.SavedObject
	err = tx.Order("id").Find(&objects).Error
	if err != nil {
		return nil, err
	}

	return objects, nil
}
