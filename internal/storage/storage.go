package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("object_not_found")

// Storage keeps generated documents under slash-separated keys.
type Storage interface {
	Put(ctx context.Context, key string, content io.Reader, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

type Type string

const (
	TypeLocal Type = "local"
	TypeS3    Type = "s3"
)
