package resource

import (
	"context"

	"github.com/smallbiznis/staffhub/pkg/db/pagination"
)

// BindFunc decodes the request body into dst.
type BindFunc func(dst any) error

// Endpoint is the type-erased surface the HTTP layer routes to.
type Endpoint interface {
	Name() string
	Model() any
	ListPage(ctx context.Context, page pagination.Page) (any, pagination.Meta, error)
	ListPageBy(ctx context.Context, column string, value uint64, page pagination.Page) (any, pagination.Meta, error)
	CreateFrom(ctx context.Context, bind BindFunc) (any, error)
	Find(ctx context.Context, id uint64) (any, error)
	UpdateFrom(ctx context.Context, id uint64, bind BindFunc) (any, error)
	Remove(ctx context.Context, id uint64) error
}
