package store

import (
	"context"
	"testing"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListClientsAndKeywords(t *testing.T) {
	as := newTestStore(t).Analytics()
	ctx := context.Background()

	clients, err := as.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 3)
	assert.Equal(t, "acme", clients[0].Name)
	assert.Equal(t, "globex", clients[1].Name)
	assert.Equal(t, "o'brien", clients[2].Name)

	keywords, err := as.ListKeywords(ctx, 1)
	require.NoError(t, err)
	names := []string{}
	for _, k := range keywords {
		assert.EqualValues(t, 1, k.ClientId)
		names = append(names, k.Keyword)
	}
	assert.Equal(t, []string{"boots", "sandals", "shoes"}, names)
}

func TestTopProducts(t *testing.T) {
	as := newTestStore(t).Analytics()
	ctx := context.Background()

	t.Run("all keywords", func(t *testing.T) {
		tps, err := as.TopProducts(ctx, 1, 3, nil, nil, 10)
		require.NoError(t, err)
		require.Len(t, tps, 4)

		ids := []int64{}
		for _, tp := range tps {
			assert.Positive(t, tp.Count)
			ids = append(ids, tp.ProductId)
		}
		assert.Equal(t, []int64{1, 4, 2, 3}, ids)
		assert.EqualValues(t, 4, tps[0].Count)
		assert.Equal(t, "P1", tps[0].OriginalProductId)
		assert.Equal(t, "Runner", tps[0].Title)
		assert.Equal(t, "ShopA", tps[0].Merchant)
		assert.EqualValues(t, 2, tps[1].Count)
		assert.Equal(t, "", tps[1].Merchant)
	})

	t.Run("limit", func(t *testing.T) {
		tps, err := as.TopProducts(ctx, 1, 3, nil, nil, 2)
		require.NoError(t, err)
		assert.Len(t, tps, 2)
	})

	t.Run("one keyword", func(t *testing.T) {
		kw := int64(1)
		tps, err := as.TopProducts(ctx, 1, 3, &kw, nil, 10)
		require.NoError(t, err)
		require.Len(t, tps, 3)
		assert.EqualValues(t, 1, tps[0].ProductId)
		assert.EqualValues(t, 3, tps[0].Count)
	})

	t.Run("date range inclusive", func(t *testing.T) {
		dr := &entity.DateRange{From: date("2024-01-02"), To: date("2024-01-03")}
		tps, err := as.TopProducts(ctx, 1, 3, nil, dr, 10)
		require.NoError(t, err)
		require.Len(t, tps, 2)
		assert.EqualValues(t, 3, tps[0].Count)
		assert.EqualValues(t, 4, tps[1].ProductId)
		assert.EqualValues(t, 2, tps[1].Count)
	})

	t.Run("client isolation", func(t *testing.T) {
		tps, err := as.TopProducts(ctx, 2, 3, nil, nil, 10)
		require.NoError(t, err)
		require.Len(t, tps, 2)
		assert.EqualValues(t, 1, tps[0].ProductId)
		assert.EqualValues(t, 1, tps[0].Count)
		assert.EqualValues(t, 6, tps[1].ProductId)
	})

	t.Run("idempotent", func(t *testing.T) {
		a, err := as.TopProducts(ctx, 1, 10, nil, nil, 10)
		require.NoError(t, err)
		b, err := as.TopProducts(ctx, 1, 10, nil, nil, 10)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestRawFilters(t *testing.T) {
	as := newTestStore(t).Analytics()
	ctx := context.Background()

	fs, err := as.RawFilters(ctx, 1, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Free shipping, On sale", "On sale", "Free shipping", " , ", "Free shipping,Under $50"}, fs)

	dr := &entity.DateRange{From: date("2024-01-03"), To: date("2024-01-03")}
	fs, err = as.RawFilters(ctx, 1, 1, dr)
	require.NoError(t, err)
	assert.Equal(t, []string{"Free shipping,Under $50"}, fs)

	// keyword of another client
	fs, err = as.RawFilters(ctx, 1, 3, nil)
	require.NoError(t, err)
	assert.Empty(t, fs)
}

func TestMerchantDistribution(t *testing.T) {
	as := newTestStore(t).Analytics()
	ctx := context.Background()

	mcs, err := as.MerchantDistribution(ctx, 1, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, []entity.MerchantCount{
		{Merchant: "ShopA", Count: 2},
		{Merchant: entity.UnknownMerchant, Count: 2},
		{Merchant: "ShopB", Count: 1},
	}, mcs)

	dr := &entity.DateRange{From: date("2024-01-01"), To: date("2024-01-01")}
	mcs, err = as.MerchantDistribution(ctx, 1, dr, 10)
	require.NoError(t, err)
	assert.Equal(t, []entity.MerchantCount{
		{Merchant: "ShopA", Count: 2},
		{Merchant: "ShopB", Count: 1},
	}, mcs)

	mcs, err = as.MerchantDistribution(ctx, 1, nil, 1)
	require.NoError(t, err)
	assert.Len(t, mcs, 1)

	mcs, err = as.MerchantDistribution(ctx, 3, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, mcs)
}

func TestPositionTrend(t *testing.T) {
	as := newTestStore(t).Analytics()
	ctx := context.Background()

	points, err := as.PositionTrend(ctx, 1, []int64{1, 2}, nil)
	require.NoError(t, err)
	require.Len(t, points, 6)

	want := []struct {
		date    string
		keyword string
		avg     float64
	}{
		{"2024-01-01", "boots", 1},
		{"2024-01-01", "shoes", 8.0 / 3},
		{"2024-01-02", "boots", 3},
		{"2024-01-02", "shoes", 3},
		{"2024-01-03", "boots", 2},
		{"2024-01-03", "shoes", 3.5},
	}
	for i, w := range want {
		assert.Equal(t, date(w.date), points[i].ScrapeDate)
		assert.Equal(t, w.keyword, points[i].Keyword)
		assert.InDelta(t, w.avg, points[i].AvgPosition, 1e-9)
	}

	dr := &entity.DateRange{From: date("2024-01-02"), To: date("2024-01-02")}
	points, err = as.PositionTrend(ctx, 1, []int64{1}, dr)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.InDelta(t, 3.0, points[0].AvgPosition, 1e-9)

	points, err = as.PositionTrend(ctx, 1, nil, nil)
	assert.NoError(t, err)
	assert.Empty(t, points)

	// keyword id of another client
	points, err = as.PositionTrend(ctx, 1, []int64{3}, nil)
	assert.NoError(t, err)
	assert.Empty(t, points)
}

func TestMerchantProducts(t *testing.T) {
	as := newTestStore(t).Analytics()
	ctx := context.Background()

	mps, err := as.MerchantProducts(ctx, 1, "ShopA", nil, 10)
	require.NoError(t, err)
	require.Len(t, mps, 2)
	assert.EqualValues(t, 1, mps[0].ProductId)
	assert.EqualValues(t, 4, mps[0].AppearanceCount)
	assert.True(t, mps[0].Rating.Valid)
	assert.True(t, mps[0].Rating.Decimal.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, mps[0].Price.Decimal.Equal(decimal.RequireFromString("59.99")))
	assert.EqualValues(t, 2, mps[1].ProductId)
	assert.EqualValues(t, 2, mps[1].AppearanceCount)
	assert.False(t, mps[1].Rating.Valid)

	// Unknown round-trips from the distribution
	mps, err = as.MerchantProducts(ctx, 1, entity.UnknownMerchant, nil, 10)
	require.NoError(t, err)
	require.Len(t, mps, 2)
	assert.EqualValues(t, 4, mps[0].ProductId)
	assert.EqualValues(t, 2, mps[0].AppearanceCount)
	assert.EqualValues(t, 5, mps[1].ProductId)

	mps, err = as.MerchantProducts(ctx, 1, "ShopC", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, mps)

	mps, err = as.MerchantProducts(ctx, 1, "ShopA' OR '1'='1", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, mps)
}
