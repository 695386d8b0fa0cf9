package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSchema = []string{
	`CREATE TABLE clients (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`,
	`CREATE TABLE keywords (id INTEGER PRIMARY KEY, client_id INTEGER NOT NULL REFERENCES clients(id), keyword TEXT NOT NULL, UNIQUE (client_id, keyword))`,
	`CREATE TABLE scrape_dates (id INTEGER PRIMARY KEY, scrape_date TEXT NOT NULL UNIQUE)`,
	`CREATE TABLE products (id INTEGER PRIMARY KEY, product_id TEXT NOT NULL, title TEXT NOT NULL, link TEXT NOT NULL, merchant TEXT, rating NUMERIC, price NUMERIC)`,
	`CREATE TABLE product_scrapes (
		id INTEGER PRIMARY KEY,
		product_id INTEGER NOT NULL REFERENCES products(id),
		keyword_id INTEGER NOT NULL REFERENCES keywords(id),
		scrape_date_id INTEGER NOT NULL REFERENCES scrape_dates(id),
		position INTEGER NOT NULL CHECK (position >= 1),
		filters TEXT
	)`,
}

// testData seeds two clients sharing product 1 so cross-client leakage
// shows up in counts.
var testData = []string{
	`INSERT INTO clients (id, name) VALUES (1, 'acme'), (2, 'globex'), (3, 'o''brien')`,
	`INSERT INTO keywords (id, client_id, keyword) VALUES
		(1, 1, 'shoes'), (2, 1, 'boots'), (3, 2, 'shoes'), (4, 1, 'sandals')`,
	`INSERT INTO scrape_dates (id, scrape_date) VALUES
		(1, '2024-01-01'), (2, '2024-01-02'), (3, '2024-01-03')`,
	`INSERT INTO products (id, product_id, title, link, merchant, rating, price) VALUES
		(1, 'P1', 'Runner', 'https://example.com/p1', 'ShopA', 4.5, 59.99),
		(2, 'P2', 'Trail', 'https://example.com/p2', 'ShopA', NULL, 89),
		(3, 'P3', 'Classic', 'https://example.com/p3', 'ShopB', 4.0, 39.5),
		(4, 'P4', 'Noname', 'https://example.com/p4', NULL, NULL, NULL),
		(5, 'P5', 'Blank', 'https://example.com/p5', '', 3.2, 10),
		(6, 'P6', 'GlobexOnly', 'https://example.com/p6', 'ShopC', 5, 120)`,
	`INSERT INTO product_scrapes (id, product_id, keyword_id, scrape_date_id, position, filters) VALUES
		(1, 1, 1, 1, 1, 'Free shipping, On sale'),
		(2, 2, 1, 1, 2, 'On sale'),
		(3, 3, 1, 1, 5, NULL),
		(4, 1, 1, 2, 2, 'Free shipping'),
		(5, 2, 1, 2, 4, ''),
		(6, 4, 1, 2, 3, ' , '),
		(7, 1, 1, 3, 1, 'Free shipping,Under $50'),
		(8, 5, 1, 3, 6, NULL),
		(9, 3, 2, 1, 1, 'Leather'),
		(10, 1, 2, 2, 3, NULL),
		(11, 4, 2, 3, 2, NULL),
		(12, 6, 3, 1, 1, 'Free shipping'),
		(13, 1, 3, 1, 1, 'Free shipping')`,
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	s, err := New(ctx, Config{
		Driver: DriverSQLite,
		DSN:    filepath.Join(t.TempDir(), "scrapes.db"),
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	for _, stmt := range append(testSchema, testData...) {
		_, err := s.db.ExecContext(ctx, stmt)
		require.NoError(t, err)
	}
	return s
}

func date(s string) time.Time {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNewConfig(t *testing.T) {
	_, err := New(context.Background(), Config{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)

	_, err = New(context.Background(), Config{Driver: DriverPostgres})
	assert.Error(t, err)
}

func TestDriverName(t *testing.T) {
	for in, want := range map[string]string{
		"":         DriverPostgres,
		"supabase": DriverPostgres,
		"postgres": DriverPostgres,
		"mysql":    DriverMySQL,
		"sqlite3":  DriverSQLite,
	} {
		got, err := driverName(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}

func TestExecute(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("rows in order", func(t *testing.T) {
		rows, err := s.Execute(ctx, entity.Query{
			Name:   "products",
			SQL:    `SELECT id, product_id, merchant FROM products WHERE id IN (:ids) ORDER BY id DESC`,
			Params: map[string]any{"ids": []int64{1, 4}},
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.EqualValues(t, 4, rows[0]["id"])
		assert.Nil(t, rows[0]["merchant"])
		assert.Equal(t, "P1", rows[1]["product_id"])
		assert.Equal(t, "ShopA", rows[1]["merchant"])
	})

	t.Run("no rows", func(t *testing.T) {
		rows, err := s.Execute(ctx, entity.Query{
			Name:   "none",
			SQL:    `SELECT id FROM clients WHERE name = :name`,
			Params: map[string]any{"name": "nobody"},
		})
		assert.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("transport error", func(t *testing.T) {
		_, err := s.Execute(ctx, entity.Query{Name: "broken", SQL: `SELECT id FROM missing_table`})
		var te *TransportError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, "broken", te.Query)
	})

	t.Run("empty in list", func(t *testing.T) {
		_, err := s.Execute(ctx, entity.Query{
			Name:   "empty in",
			SQL:    `SELECT id FROM clients WHERE id IN (:ids)`,
			Params: map[string]any{"ids": []int64{}},
		})
		var te *TransportError
		assert.True(t, errors.As(err, &te))
	})
}
