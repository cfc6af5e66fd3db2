package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/smallbiznis/staffhub/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLocalRoundTrip(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	ok, err := store.Exists(ctx, "invoices/1.pdf")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "invoices/1.pdf", strings.NewReader("%PDF-1.3"), "application/pdf"))

	ok, err = store.Exists(ctx, "invoices/1.pdf")
	require.NoError(t, err)
	assert.True(t, ok)

	rc, err := store.Get(ctx, "invoices/1.pdf")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(body))

	require.NoError(t, store.Delete(ctx, "invoices/1.pdf"))
	_, err = store.Get(ctx, "invoices/1.pdf")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting twice is fine
	require.NoError(t, store.Delete(ctx, "invoices/1.pdf"))
}

func TestLocalRejectsTraversal(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	err = store.Put(context.Background(), "../escape.pdf", strings.NewReader("x"), "application/pdf")
	assert.ErrorContains(t, err, "path traversal")
}

func TestNewSelectsBackend(t *testing.T) {
	log := zaptest.NewLogger(t)

	cfg := config.Config{Storage: config.StorageConfig{Type: "local", LocalPath: t.TempDir()}}
	store, err := New(cfg, log)
	require.NoError(t, err)
	assert.IsType(t, &Local{}, store)

	_, err = New(config.Config{Storage: config.StorageConfig{Type: "s3"}}, log)
	assert.Error(t, err)

	_, err = New(config.Config{Storage: config.StorageConfig{Type: "ftp"}}, log)
	assert.Error(t, err)
}
