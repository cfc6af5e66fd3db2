package resource

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not_found")

// Creator is a validated create payload that builds a new row.
type Creator[T any] interface {
	ToModel() T
}

// Updater is a validated full-replacement payload applied to a loaded row.
type Updater[T any] interface {
	ApplyTo(model *T)
}

// Hooks run around persistence. Any hook error aborts the operation.
type Hooks[T any] struct {
	BeforeSave  func(ctx context.Context, model *T) error
	AfterCreate func(ctx context.Context, model *T) error
	AfterUpdate func(ctx context.Context, before, after *T) error
	AfterDelete func(ctx context.Context, model *T) error
}

// Definition registers one entity as an HTTP resource.
type Definition[T any] struct {
	// Name is the route segment, e.g. "event-states".
	Name string
	// UniqueFields are json field names backed by unique indexes. A unique
	// violation raised by the database is reported on the matching field.
	UniqueFields []string
	Hooks        Hooks[T]
}

// Relation exposes GET /{Parent}/{id}/{Path}: the Child rows whose Column
// equals the parent id.
type Relation struct {
	Parent string
	Path   string
	Child  string
	Column string
}
