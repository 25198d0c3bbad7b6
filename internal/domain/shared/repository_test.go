package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterNormalize(t *testing.T) {
	t.Run("clamps out-of-range values instead of rejecting", func(t *testing.T) {
		f := Filter{Page: -3, PageSize: 0}
		f.Normalize()
		assert.Equal(t, 1, f.Page)
		assert.Equal(t, 1, f.PageSize)
	})

	t.Run("explicit zero page size becomes one, not the default", func(t *testing.T) {
		f := Filter{Page: 1, PageSize: 0}
		f.Normalize()
		assert.Equal(t, 1, f.PageSize)
	})

	t.Run("caps page size", func(t *testing.T) {
		f := Filter{Page: 2, PageSize: 500}
		f.Normalize()
		assert.Equal(t, 100, f.PageSize)
	})

	t.Run("keeps valid values", func(t *testing.T) {
		f := Filter{Page: 3, PageSize: 25, OrderDir: "asc"}
		f.Normalize()
		assert.Equal(t, 3, f.Page)
		assert.Equal(t, 25, f.PageSize)
		assert.Equal(t, "asc", f.OrderDir)
	})
}

func TestFilterOffset(t *testing.T) {
	f := Filter{Page: 3, PageSize: 10}
	assert.Equal(t, 20, f.Offset())
}

func TestNewPaginated(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		p := NewPaginated([]int{1, 2, 3}, 25, 1, 10)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("exact division", func(t *testing.T) {
		p := NewPaginated([]int{}, 20, 1, 10)
		assert.Equal(t, 2, p.TotalPages)
	})

	t.Run("empty result has zero pages", func(t *testing.T) {
		p := NewPaginated([]int{}, 0, 1, 10)
		assert.Equal(t, 0, p.TotalPages)
		assert.Equal(t, int64(0), p.Total)
	})
}
