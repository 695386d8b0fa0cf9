package dependency

import (
	"context"
	"database/sql"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --case underscore --name "Repository|Resolver|Analytics|Reporter" --output=./mocks
type (
	// Adapter executes a logical query and returns its rows in order.
	// A query with no matching rows returns an empty slice and a nil error.
	Adapter interface {
		Execute(ctx context.Context, q entity.Query) ([]entity.Row, error)
	}

	Resolver interface {
		// ResolveClient returns the id of the client with the given name or entity.ErrNotFound.
		ResolveClient(ctx context.Context, name string) (int64, error)
		// ResolveKeyword returns the id of a keyword of the client or entity.ErrNotFound.
		ResolveKeyword(ctx context.Context, clientId int64, keyword string) (int64, error)
		// ResolveKeywords resolves many keywords at once, dropping unknown ones.
		ResolveKeywords(ctx context.Context, clientId int64, keywords []string) ([]int64, error)
	}

	Analytics interface {
		ListClients(ctx context.Context) ([]entity.Client, error)
		ListKeywords(ctx context.Context, clientId int64) ([]entity.Keyword, error)
		TopProducts(ctx context.Context, clientId int64, maxPosition int, keywordId *int64, dr *entity.DateRange, limit int) ([]entity.TopProduct, error)
		// RawFilters returns every non-empty filters string of a keyword, one per scrape.
		RawFilters(ctx context.Context, clientId, keywordId int64, dr *entity.DateRange) ([]string, error)
		MerchantDistribution(ctx context.Context, clientId int64, dr *entity.DateRange, limit int) ([]entity.MerchantCount, error)
		PositionTrend(ctx context.Context, clientId int64, keywordIds []int64, dr *entity.DateRange) ([]entity.PositionTrendPoint, error)
		MerchantProducts(ctx context.Context, clientId int64, merchant string, dr *entity.DateRange, limit int) ([]entity.MerchantProduct, error)
	}

	Repository interface {
		Adapter
		Resolver() Resolver
		Analytics() Analytics
		Ping(ctx context.Context) error
		Close()
	}

	// Reporter is the caller-facing query engine. Every method is total:
	// failures are logged and surface as an empty result.
	Reporter interface {
		Clients(ctx context.Context) []entity.Client
		Keywords(ctx context.Context, client string) []entity.Keyword
		TopProducts(ctx context.Context, p entity.TopProductsParams) []entity.TopProduct
		TopFilters(ctx context.Context, p entity.FilterParams) []entity.FilterCount
		MerchantDistribution(ctx context.Context, p entity.MerchantDistributionParams) []entity.MerchantCount
		PositionTrends(ctx context.Context, p entity.PositionTrendParams) []entity.PositionTrendPoint
		MerchantProducts(ctx context.Context, p entity.MerchantProductsParams) []entity.MerchantProduct
		ShippingReturns(merchant string) entity.ShippingReturns
		Ping(ctx context.Context) error
	}

	// DB represents database interface.
	DB interface {
		// sqlx methods
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		Rebind(query string) string
		DriverName() string
	}
)
