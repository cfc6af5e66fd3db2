package repository

import (
	"context"

	"github.com/smallbiznis/staffhub/pkg/db/option"
	"github.com/smallbiznis/staffhub/pkg/db/pagination"
)

// Repository is the storage contract shared by every resource table.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uint64) (*T, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Create(ctx context.Context, resource *T) error
	Save(ctx context.Context, resource *T) error
	// Reload overwrites resource with the stored row of the same primary key.
	Reload(ctx context.Context, resource *T) error
	Delete(ctx context.Context, id uint64) error
	Paginate(ctx context.Context, page pagination.Page, opts ...option.QueryOption) ([]*T, int64, error)
}
