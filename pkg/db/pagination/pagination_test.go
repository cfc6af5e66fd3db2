package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		page, err := NewPage(0, 0, 15, 100)
		require.NoError(t, err)
		assert.Equal(t, Page{Number: 1, PerPage: 15}, page)
	})

	t.Run("clamps per page", func(t *testing.T) {
		page, err := NewPage(2, 500, 15, 100)
		require.NoError(t, err)
		assert.Equal(t, 100, page.PerPage)
		assert.Equal(t, 100, page.Offset())
	})

	t.Run("rejects negatives", func(t *testing.T) {
		_, err := NewPage(-1, 10, 15, 100)
		assert.ErrorIs(t, err, ErrInvalidPage)
		_, err = NewPage(1, -5, 15, 100)
		assert.ErrorIs(t, err, ErrInvalidPerPage)
	})
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(Page{Number: 2, PerPage: 10}, 25, 10)
	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.LastPage)
	require.NotNil(t, meta.From)
	require.NotNil(t, meta.To)
	assert.Equal(t, 11, *meta.From)
	assert.Equal(t, 20, *meta.To)

	empty := NewMeta(Page{Number: 1, PerPage: 10}, 0, 0)
	assert.Equal(t, 1, empty.LastPage)
	assert.Nil(t, empty.From)
	assert.Nil(t, empty.To)
}

func TestNewPageRejectsOverflowingNumber(t *testing.T) {
	_, err := NewPage(math.MaxInt/10+1, 10, DefaultPerPage, MaxPerPage)
	assert.ErrorIs(t, err, ErrInvalidPage)

	page, err := NewPage(math.MaxInt/10, 10, DefaultPerPage, MaxPerPage)
	require.NoError(t, err)
	assert.Positive(t, page.Offset())

	meta := NewMeta(page, 1, 1)
	require.NotNil(t, meta.From)
	assert.Positive(t, *meta.From)
}
