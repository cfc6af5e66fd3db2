package repository

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/staffhub/pkg/db/dbtest"
	"github.com/smallbiznis/staffhub/pkg/db/option"
	"github.com/smallbiznis/staffhub/pkg/db/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type widget struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string
	GroupID   uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func TestStoreCRUD(t *testing.T) {
	db := dbtest.Open(t, &widget{})
	repo := ProvideStore[widget](db)
	ctx := context.Background()

	w := &widget{Name: "first", GroupID: 1}
	require.NoError(t, repo.Create(ctx, w))
	assert.NotZero(t, w.ID)

	found, err := repo.FindByID(ctx, w.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "first", found.Name)

	found.Name = ""
	found.GroupID = 0
	require.NoError(t, repo.Save(ctx, found))

	reloaded, err := repo.FindByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "", reloaded.Name)
	assert.Equal(t, uint64(0), reloaded.GroupID)

	exists, err := repo.Exists(ctx, w.ID)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, 0)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Delete(ctx, w.ID))
	missing, err := repo.FindByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoreReload(t *testing.T) {
	db := dbtest.Open(t, &widget{})
	repo := ProvideStore[widget](db)
	ctx := context.Background()

	w := &widget{Name: "first", GroupID: 1}
	require.NoError(t, repo.Create(ctx, w))
	require.NoError(t, db.Model(&widget{}).Where("id = ?", w.ID).Update("name", "renamed").Error)

	require.NoError(t, repo.Reload(ctx, w))
	assert.Equal(t, "renamed", w.Name)

	ghost := &widget{ID: w.ID + 100}
	assert.ErrorIs(t, repo.Reload(ctx, ghost), gorm.ErrRecordNotFound)
}

func TestStorePaginate(t *testing.T) {
	db := dbtest.Open(t, &widget{})
	repo := ProvideStore[widget](db)
	ctx := context.Background()

	batch := make([]*widget, 0, 7)
	for i := 0; i < 7; i++ {
		w := &widget{Name: "w", GroupID: uint64(i%2 + 1)}
		require.NoError(t, repo.Create(ctx, w))
		batch = append(batch, w)
	}

	items, total, err := repo.Paginate(ctx, pagination.Page{Number: 2, PerPage: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	require.Len(t, items, 3)
	assert.Less(t, items[0].ID, items[1].ID)
	assert.Equal(t, batch[3].ID, items[0].ID)

	items, total, err = repo.Paginate(ctx, pagination.Page{Number: 1, PerPage: 10}, option.Equal("group_id", uint64(2)))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, items, 3)

	items, total, err = repo.Paginate(ctx, pagination.Page{Number: 5, PerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Empty(t, items)
}
