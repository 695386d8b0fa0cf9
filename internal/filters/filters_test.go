package filters

import (
	"fmt"
	"testing"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"Free shipping", "On sale"}, Tokenize(" Free shipping ,On sale"))
	assert.Equal(t, []string{"x"}, Tokenize("x"))
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize(" , ,,  "))
}

func TestCount(t *testing.T) {
	t.Run("ranked with stable ties", func(t *testing.T) {
		got := Count([]string{"a, b", "b,c ", ""}, 10)
		assert.Equal(t, []entity.FilterCount{
			{Filter: "b", Count: 2},
			{Filter: "a", Count: 1},
			{Filter: "c", Count: 1},
		}, got)
	})

	t.Run("single", func(t *testing.T) {
		assert.Equal(t, []entity.FilterCount{{Filter: "x", Count: 1}}, Count([]string{"x"}, 10))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, Count(nil, 10))
		assert.Empty(t, Count([]string{",", "  "}, 10))
	})

	t.Run("counts per token", func(t *testing.T) {
		got := Count([]string{"a,a", "a"}, 10)
		assert.Equal(t, []entity.FilterCount{{Filter: "a", Count: 3}}, got)
	})

	t.Run("limit", func(t *testing.T) {
		raw := []string{}
		for i := 0; i < 15; i++ {
			raw = append(raw, fmt.Sprintf("f%d", i))
		}
		assert.Len(t, Count(raw, 3), 3)
		assert.Len(t, Count(raw, 0), entity.DefaultLimit)
	})

	t.Run("case sensitive", func(t *testing.T) {
		got := Count([]string{"Sale", "sale"}, 10)
		assert.Len(t, got, 2)
	})
}
