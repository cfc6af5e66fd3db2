package repository

import (
	"context"
	"errors"

	"github.com/smallbiznis/staffhub/pkg/db/option"
	"github.com/smallbiznis/staffhub/pkg/db/pagination"
	"gorm.io/gorm"
)

type store[T any] struct {
	db *gorm.DB
}

func ProvideStore[T any](db *gorm.DB) Repository[T] {
	return &store[T]{db: db}
}

func (r *store[T]) FindByID(ctx context.Context, id uint64) (*T, error) {
	if id == 0 {
		return nil, nil
	}
	var result T
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *store[T]) Exists(ctx context.Context, id uint64) (bool, error) {
	if id == 0 {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *store[T]) Create(ctx context.Context, resource *T) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

// Save writes every column of resource, zero values included.
func (r *store[T]) Save(ctx context.Context, resource *T) error {
	return r.db.WithContext(ctx).Save(resource).Error
}

func (r *store[T]) Reload(ctx context.Context, resource *T) error {
	return r.db.WithContext(ctx).Take(resource).Error
}

func (r *store[T]) Delete(ctx context.Context, id uint64) error {
	var dummy T
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&dummy).Error
}

func (r *store[T]) count(ctx context.Context, opts ...option.QueryOption) (int64, error) {
	var count int64
	stmt := r.db.WithContext(ctx).Model(new(T))
	for _, opt := range opts {
		stmt = opt.Apply(stmt)
	}
	err := stmt.Count(&count).Error
	return count, err
}

// Paginate returns one id-ascending page and the unpaged total.
func (r *store[T]) Paginate(ctx context.Context, page pagination.Page, opts ...option.QueryOption) ([]*T, int64, error) {
	total, err := r.count(ctx, opts...)
	if err != nil {
		return nil, 0, err
	}

	items := make([]*T, 0, page.PerPage)
	if total == 0 {
		return items, 0, nil
	}

	stmt := r.db.WithContext(ctx).Model(new(T))
	for _, opt := range opts {
		stmt = opt.Apply(stmt)
	}
	stmt = option.OrderBy("id", false).Apply(stmt)
	stmt = option.ApplyPagination(page).Apply(stmt)
	if err := stmt.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
