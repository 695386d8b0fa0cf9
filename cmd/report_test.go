package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dto"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/report"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seed = []string{
	`CREATE TABLE clients (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`,
	`CREATE TABLE keywords (id INTEGER PRIMARY KEY, client_id INTEGER NOT NULL, keyword TEXT NOT NULL)`,
	`CREATE TABLE scrape_dates (id INTEGER PRIMARY KEY, scrape_date TEXT NOT NULL)`,
	`CREATE TABLE products (id INTEGER PRIMARY KEY, product_id TEXT, title TEXT, link TEXT, merchant TEXT, rating NUMERIC, price NUMERIC)`,
	`CREATE TABLE product_scrapes (id INTEGER PRIMARY KEY, product_id INTEGER, keyword_id INTEGER, scrape_date_id INTEGER, position INTEGER, filters TEXT)`,
	`INSERT INTO clients VALUES (1, 'acme')`,
	`INSERT INTO keywords VALUES (1, 1, 'shoes'), (2, 1, 'boots')`,
	`INSERT INTO scrape_dates VALUES (1, '2024-01-01'), (2, '2024-01-02')`,
	`INSERT INTO products VALUES (1, 'P1', 'Runner', 'l1', 'ShopA', 4.5, 59.99), (2, 'P2', 'Trail', 'l2', NULL, NULL, NULL)`,
	`INSERT INTO product_scrapes VALUES
		(1, 1, 1, 1, 1, 'On sale, Free shipping'),
		(2, 2, 1, 1, 2, 'On sale'),
		(3, 1, 1, 2, 1, NULL),
		(4, 2, 2, 2, 1, NULL)`,
}

func newTestEngine(t *testing.T) *report.Engine {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "scrapes.db")

	db, err := sqlx.Open(store.DriverSQLite, path)
	require.NoError(t, err)
	for _, stmt := range seed {
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	require.NoError(t, db.Close())

	s, err := store.New(ctx, store.Config{Driver: store.DriverSQLite, DSN: path})
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return report.New(&report.Config{DefaultDays: 30}, s, nil)
}

func TestRunReport(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	base := reportFlags{client: "acme", days: -1, limit: 10, maxPosition: 1}

	t.Run("top products", func(t *testing.T) {
		tbl, err := runReport(ctx, e, metricTopProducts, base, now)
		require.NoError(t, err)
		require.Len(t, tbl.Rows, 2)
		assert.Equal(t, int64(1), tbl.Rows[0][0])
		assert.Equal(t, int64(2), tbl.Rows[0][5])
	})

	t.Run("filters", func(t *testing.T) {
		f := base
		f.keywords = []string{"shoes"}
		tbl, err := runReport(ctx, e, metricFilters, f, now)
		require.NoError(t, err)
		assert.Equal(t, []any{"On sale", int64(2)}, tbl.Rows[0])
	})

	t.Run("merchants", func(t *testing.T) {
		tbl, err := runReport(ctx, e, metricMerchants, base, now)
		require.NoError(t, err)
		assert.Equal(t, [][]any{{"ShopA", int64(1)}, {"Unknown", int64(1)}}, tbl.Rows)
	})

	t.Run("trends", func(t *testing.T) {
		f := base
		f.keywords = []string{"shoes", "boots"}
		tbl, err := runReport(ctx, e, metricTrends, f, now)
		require.NoError(t, err)
		require.Len(t, tbl.Rows, 3)
		assert.Equal(t, []any{"2024-01-01", "shoes", 1.5}, tbl.Rows[0])
	})

	t.Run("merchant products", func(t *testing.T) {
		f := base
		f.merchant = "Unknown"
		tbl, err := runReport(ctx, e, metricMerchantProducts, f, now)
		require.NoError(t, err)
		require.Len(t, tbl.Rows, 1)
		assert.Equal(t, "Trail", tbl.Rows[0][2])
	})

	t.Run("outside default window", func(t *testing.T) {
		tbl, err := runReport(ctx, e, metricMerchants, base, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, tbl.Rows)
	})

	t.Run("explicit range", func(t *testing.T) {
		f := base
		f.from, f.to = "2024-01-02", "2024-01-02"
		tbl, err := runReport(ctx, e, metricTopProducts, f, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Len(t, tbl.Rows, 2)
	})

	t.Run("bad date", func(t *testing.T) {
		f := base
		f.from, f.to = "2024-01-02", "tomorrow"
		_, err := runReport(ctx, e, metricTopProducts, f, now)
		assert.Error(t, err)
	})

	t.Run("unknown client", func(t *testing.T) {
		f := base
		f.client = "nobody"
		tbl, err := runReport(ctx, e, metricMerchants, f, now)
		require.NoError(t, err)
		assert.Empty(t, tbl.Rows)
	})
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, writeJSON(buf, dto.ConvertMerchantCountsToTable(nil)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, []any{}, out["columns"])
}

func TestReportArgs(t *testing.T) {
	assert.Error(t, reportCmd.Args(reportCmd, []string{}))
	assert.Error(t, reportCmd.Args(reportCmd, []string{"revenue"}))
	assert.NoError(t, reportCmd.Args(reportCmd, []string{metricTrends}))
}
