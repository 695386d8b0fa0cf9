// Package report runs the caller-facing report operations. Every operation
// resolves names to ids, runs one aggregation query and returns typed rows.
// Failures never reach the caller: they are logged and the result is empty.
package report

import (
	"context"
	"errors"
	"log/slog"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dependency"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/filters"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/shipping"
)

// Config holds report defaults.
type Config struct {
	// DefaultDays is the trailing window used by callers that get no dates.
	// Zero means no date filter.
	DefaultDays int `mapstructure:"default_days"`
	// Policies overrides the default shipping and returns texts per merchant.
	Policies shipping.Table `mapstructure:"policies"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		DefaultDays: 30,
	}
}

// Engine implements dependency.Reporter on top of a repository.
type Engine struct {
	repo dependency.Repository
	c    *Config
	log  *slog.Logger
}

var _ dependency.Reporter = (*Engine)(nil)

// New creates a new report engine. A nil config uses DefaultConfig and a
// nil logger uses slog.Default.
func New(c *Config, repo dependency.Repository, log *slog.Logger) *Engine {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		repo: repo,
		c:    c,
		log:  log,
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.c
}

// fail logs err for op. Unknown names are expected input and logged at
// debug level only.
func (e *Engine) fail(ctx context.Context, op string, err error) {
	if errors.Is(err, entity.ErrNotFound) {
		e.log.DebugContext(ctx, "nothing to report",
			slog.String("operation", op),
			slog.String("err", err.Error()),
		)
		return
	}
	e.log.ErrorContext(ctx, "report failed",
		slog.String("operation", op),
		slog.String("err", err.Error()),
	)
}

func (e *Engine) Clients(ctx context.Context) []entity.Client {
	const op = "clients"
	cs, err := e.repo.Analytics().ListClients(ctx)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.Client{}
	}
	return cs
}

func (e *Engine) Keywords(ctx context.Context, client string) []entity.Keyword {
	const op = "keywords"
	clientId, err := e.repo.Resolver().ResolveClient(ctx, client)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.Keyword{}
	}
	ks, err := e.repo.Analytics().ListKeywords(ctx, clientId)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.Keyword{}
	}
	return ks
}

// TopProducts ranks the client's products by the number of scrapes at or
// above p.MaxPosition.
func (e *Engine) TopProducts(ctx context.Context, p entity.TopProductsParams) []entity.TopProduct {
	const op = "top products"
	if p.MaxPosition < 1 || !p.DateRange.Valid() {
		return []entity.TopProduct{}
	}
	clientId, err := e.repo.Resolver().ResolveClient(ctx, p.Client)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.TopProduct{}
	}

	var keywordId *int64
	if p.Keyword != "" {
		id, err := e.repo.Resolver().ResolveKeyword(ctx, clientId, p.Keyword)
		if err != nil {
			e.fail(ctx, op, err)
			return []entity.TopProduct{}
		}
		keywordId = &id
	}

	tps, err := e.repo.Analytics().TopProducts(ctx, clientId, p.MaxPosition, keywordId, p.DateRange, entity.NormalizeLimit(p.Limit))
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.TopProduct{}
	}
	return tps
}

// TopFilters counts the individual filter labels seen for one keyword.
func (e *Engine) TopFilters(ctx context.Context, p entity.FilterParams) []entity.FilterCount {
	const op = "filters"
	if !p.DateRange.Valid() {
		return []entity.FilterCount{}
	}
	clientId, err := e.repo.Resolver().ResolveClient(ctx, p.Client)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.FilterCount{}
	}
	keywordId, err := e.repo.Resolver().ResolveKeyword(ctx, clientId, p.Keyword)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.FilterCount{}
	}
	raw, err := e.repo.Analytics().RawFilters(ctx, clientId, keywordId, p.DateRange)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.FilterCount{}
	}
	return filters.Count(raw, p.Limit)
}

// MerchantDistribution counts distinct products per merchant.
func (e *Engine) MerchantDistribution(ctx context.Context, p entity.MerchantDistributionParams) []entity.MerchantCount {
	const op = "merchant distribution"
	if !p.DateRange.Valid() {
		return []entity.MerchantCount{}
	}
	clientId, err := e.repo.Resolver().ResolveClient(ctx, p.Client)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.MerchantCount{}
	}
	mcs, err := e.repo.Analytics().MerchantDistribution(ctx, clientId, p.DateRange, entity.NormalizeLimit(p.Limit))
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.MerchantCount{}
	}
	return mcs
}

// PositionTrends averages positions per scrape date for each keyword.
// Unknown keywords are skipped.
func (e *Engine) PositionTrends(ctx context.Context, p entity.PositionTrendParams) []entity.PositionTrendPoint {
	const op = "position trends"
	if len(p.Keywords) == 0 || !p.DateRange.Valid() {
		return []entity.PositionTrendPoint{}
	}
	clientId, err := e.repo.Resolver().ResolveClient(ctx, p.Client)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.PositionTrendPoint{}
	}
	keywordIds, err := e.repo.Resolver().ResolveKeywords(ctx, clientId, p.Keywords)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.PositionTrendPoint{}
	}
	if len(keywordIds) == 0 {
		return []entity.PositionTrendPoint{}
	}
	points, err := e.repo.Analytics().PositionTrend(ctx, clientId, keywordIds, p.DateRange)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.PositionTrendPoint{}
	}
	return points
}

// MerchantProducts lists one merchant's products by appearance count.
func (e *Engine) MerchantProducts(ctx context.Context, p entity.MerchantProductsParams) []entity.MerchantProduct {
	const op = "merchant products"
	if p.Merchant == "" || !p.DateRange.Valid() {
		return []entity.MerchantProduct{}
	}
	clientId, err := e.repo.Resolver().ResolveClient(ctx, p.Client)
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.MerchantProduct{}
	}
	mps, err := e.repo.Analytics().MerchantProducts(ctx, clientId, p.Merchant, p.DateRange, entity.NormalizeLimit(p.Limit))
	if err != nil {
		e.fail(ctx, op, err)
		return []entity.MerchantProduct{}
	}
	return mps
}

// ShippingReturns returns the policy texts of merchant.
func (e *Engine) ShippingReturns(merchant string) entity.ShippingReturns {
	return e.c.Policies.Lookup(merchant)
}

// Ping checks that the store is reachable.
func (e *Engine) Ping(ctx context.Context) error {
	return e.repo.Ping(ctx)
}
