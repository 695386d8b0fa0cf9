package store

import (
	"context"
	"fmt"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dependency"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/normalize"
)

type analyticsStore struct {
	*Store
}

var _ dependency.Analytics = (*analyticsStore)(nil)

func (s *analyticsStore) ListClients(ctx context.Context) ([]entity.Client, error) {
	q := listClientsQuery()
	rows, err := s.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	clients, err := normalize.Clients(rows)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", q.Name, err)
	}
	return clients, nil
}

func (s *analyticsStore) ListKeywords(ctx context.Context, clientId int64) ([]entity.Keyword, error) {
	q := listKeywordsQuery(clientId)
	rows, err := s.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	keywords, err := normalize.Keywords(rows)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", q.Name, err)
	}
	return keywords, nil
}

// TopProducts counts, per product, the scrapes at or above maxPosition.
// keywordId narrows the count to one keyword when not nil.
func (s *analyticsStore) TopProducts(ctx context.Context, clientId int64, maxPosition int, keywordId *int64, dr *entity.DateRange, limit int) ([]entity.TopProduct, error) {
	q := topProductsQuery(clientId, maxPosition, keywordId, dr, limit)
	rows, err := s.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	tps, err := normalize.TopProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", q.Name, err)
	}
	return tps, nil
}

// RawFilters returns every non-empty filters string of the keyword's scrapes.
func (s *analyticsStore) RawFilters(ctx context.Context, clientId, keywordId int64, dr *entity.DateRange) ([]string, error) {
	q := rawFiltersQuery(clientId, keywordId, dr)
	rows, err := s.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	fs, err := normalize.FilterStrings(rows)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", q.Name, err)
	}
	return fs, nil
}

// MerchantDistribution counts distinct products per merchant label.
func (s *analyticsStore) MerchantDistribution(ctx context.Context, clientId int64, dr *entity.DateRange, limit int) ([]entity.MerchantCount, error) {
	q := merchantDistributionQuery(clientId, dr, limit)
	rows, err := s.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	mcs, err := normalize.MerchantCounts(rows)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", q.Name, err)
	}
	return mcs, nil
}

// PositionTrend averages positions per (scrape date, keyword).
func (s *analyticsStore) PositionTrend(ctx context.Context, clientId int64, keywordIds []int64, dr *entity.DateRange) ([]entity.PositionTrendPoint, error) {
	if len(keywordIds) == 0 {
		return []entity.PositionTrendPoint{}, nil
	}
	q := positionTrendQuery(clientId, keywordIds, dr)
	rows, err := s.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	points, err := normalize.PositionTrend(rows)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", q.Name, err)
	}
	return points, nil
}

// MerchantProducts lists the products of one merchant by appearance count.
func (s *analyticsStore) MerchantProducts(ctx context.Context, clientId int64, merchant string, dr *entity.DateRange, limit int) ([]entity.MerchantProduct, error) {
	q := merchantProductsQuery(clientId, merchant, dr, limit)
	rows, err := s.Execute(ctx, q)
	if err != nil {
		return nil, err
	}
	mps, err := normalize.MerchantProducts(rows)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", q.Name, err)
	}
	return mps, nil
}
