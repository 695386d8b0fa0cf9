package store

import (
	"context"
	"errors"
	"testing"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClient(t *testing.T) {
	rs := newTestStore(t).Resolver()
	ctx := context.Background()

	id, err := rs.ResolveClient(ctx, "acme")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, id)

	id, err = rs.ResolveClient(ctx, "o'brien")
	assert.NoError(t, err)
	assert.EqualValues(t, 3, id)

	for _, name := range []string{"", "nobody", "ACME", "acme' OR '1'='1", "acme; DROP TABLE clients; --"} {
		_, err := rs.ResolveClient(ctx, name)
		assert.True(t, errors.Is(err, entity.ErrNotFound), name)
	}

	// still there after the injection-shaped lookups
	id, err = rs.ResolveClient(ctx, "globex")
	assert.NoError(t, err)
	assert.EqualValues(t, 2, id)
}

func TestResolveKeyword(t *testing.T) {
	rs := newTestStore(t).Resolver()
	ctx := context.Background()

	id, err := rs.ResolveKeyword(ctx, 1, "shoes")
	assert.NoError(t, err)
	assert.EqualValues(t, 1, id)

	// same text, other client
	id, err = rs.ResolveKeyword(ctx, 2, "shoes")
	assert.NoError(t, err)
	assert.EqualValues(t, 3, id)

	_, err = rs.ResolveKeyword(ctx, 2, "boots")
	assert.True(t, errors.Is(err, entity.ErrNotFound))

	_, err = rs.ResolveKeyword(ctx, 1, "")
	assert.True(t, errors.Is(err, entity.ErrNotFound))
}

func TestResolveKeywords(t *testing.T) {
	rs := newTestStore(t).Resolver()
	ctx := context.Background()

	ids, err := rs.ResolveKeywords(ctx, 1, []string{"boots", "missing", "shoes", "boots"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids)

	ids, err = rs.ResolveKeywords(ctx, 1, nil)
	assert.NoError(t, err)
	assert.Empty(t, ids)

	ids, err = rs.ResolveKeywords(ctx, 2, []string{"boots"})
	assert.NoError(t, err)
	assert.Empty(t, ids)
}
