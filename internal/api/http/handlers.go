package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dto"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/report"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"
)

// defaultMaxPosition counts first-position appearances.
const defaultMaxPosition = 1

// common holds the query parameters shared by every report.
type common struct {
	client    string
	dateRange *entity.DateRange
	limit     int
}

// pathParam returns the decoded path parameter key. chi matches on the raw
// path when the request carries escaped characters.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	v, err := url.PathUnescape(v)
	if err != nil {
		return "", fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

// intParam returns the integer query parameter key, or def when absent.
func intParam(q url.Values, key string, def int) (int, error) {
	v := q.Get(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func (s *Server) parseCommon(r *http.Request) (common, error) {
	var c common
	var err error
	if c.client, err = pathParam(r, "client"); err != nil {
		return c, err
	}
	q := r.URL.Query()
	if c.limit, err = intParam(q, "limit", 0); err != nil {
		return c, err
	}
	days, err := intParam(q, "days", s.defaultDays)
	if err != nil {
		return c, err
	}
	c.dateRange, err = report.ParseDateRange(q.Get("from"), q.Get("to"), days, s.now())
	return c, err
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.rep.Ping(r.Context()); err != nil {
		render.Render(w, r, ErrUnavailable(err))
		return
	}
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (s *Server) listClients(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, dto.ConvertClientsToTable(s.rep.Clients(r.Context())))
}

func (s *Server) listKeywords(w http.ResponseWriter, r *http.Request) {
	client, err := pathParam(r, "client")
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	render.JSON(w, r, dto.ConvertKeywordsToTable(s.rep.Keywords(r.Context(), client)))
}

func (s *Server) topProducts(w http.ResponseWriter, r *http.Request) {
	c, err := s.parseCommon(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	maxPosition, err := intParam(r.URL.Query(), "max_position", defaultMaxPosition)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	tps := s.rep.TopProducts(r.Context(), entity.TopProductsParams{
		Client:      c.client,
		MaxPosition: maxPosition,
		Keyword:     r.URL.Query().Get("keyword"),
		DateRange:   c.dateRange,
		Limit:       c.limit,
	})
	render.JSON(w, r, dto.ConvertTopProductsToTable(tps))
}

// overview runs the landing reports of a client in parallel.
func (s *Server) overview(w http.ResponseWriter, r *http.Request) {
	c, err := s.parseCommon(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	maxPosition, err := intParam(r.URL.Query(), "max_position", defaultMaxPosition)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	o := dto.Overview{Client: c.client}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		o.Keywords = dto.ConvertKeywordsToTable(s.rep.Keywords(ctx, c.client))
		return nil
	})
	g.Go(func() error {
		o.TopProducts = dto.ConvertTopProductsToTable(s.rep.TopProducts(ctx, entity.TopProductsParams{
			Client:      c.client,
			MaxPosition: maxPosition,
			DateRange:   c.dateRange,
			Limit:       c.limit,
		}))
		return nil
	})
	g.Go(func() error {
		o.Merchants = dto.ConvertMerchantCountsToTable(s.rep.MerchantDistribution(ctx, entity.MerchantDistributionParams{
			Client:    c.client,
			DateRange: c.dateRange,
			Limit:     c.limit,
		}))
		return nil
	})
	// reports never fail; errors are already logged by the engine
	_ = g.Wait()

	render.JSON(w, r, o)
}

func (s *Server) topFilters(w http.ResponseWriter, r *http.Request) {
	c, err := s.parseCommon(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	fcs := s.rep.TopFilters(r.Context(), entity.FilterParams{
		Client:    c.client,
		Keyword:   r.URL.Query().Get("keyword"),
		DateRange: c.dateRange,
		Limit:     c.limit,
	})
	render.JSON(w, r, dto.ConvertFilterCountsToTable(fcs))
}

func (s *Server) merchantDistribution(w http.ResponseWriter, r *http.Request) {
	c, err := s.parseCommon(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	mcs := s.rep.MerchantDistribution(r.Context(), entity.MerchantDistributionParams{
		Client:    c.client,
		DateRange: c.dateRange,
		Limit:     c.limit,
	})
	render.JSON(w, r, dto.ConvertMerchantCountsToTable(mcs))
}

func (s *Server) positionTrends(w http.ResponseWriter, r *http.Request) {
	c, err := s.parseCommon(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	points := s.rep.PositionTrends(r.Context(), entity.PositionTrendParams{
		Client:    c.client,
		Keywords:  r.URL.Query()["keyword"],
		DateRange: c.dateRange,
	})
	render.JSON(w, r, dto.ConvertPositionTrendToTable(points))
}

func (s *Server) merchantProducts(w http.ResponseWriter, r *http.Request) {
	c, err := s.parseCommon(r)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	merchant, err := pathParam(r, "merchant")
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	mps := s.rep.MerchantProducts(r.Context(), entity.MerchantProductsParams{
		Client:    c.client,
		Merchant:  merchant,
		DateRange: c.dateRange,
		Limit:     c.limit,
	})
	render.JSON(w, r, dto.ConvertMerchantProductsToTable(mps))
}

func (s *Server) shippingReturns(w http.ResponseWriter, r *http.Request) {
	merchant, err := pathParam(r, "merchant")
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	render.JSON(w, r, dto.ConvertShippingReturns(s.rep.ShippingReturns(merchant)))
}
