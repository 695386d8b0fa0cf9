package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/dto"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/report"
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/store"
	"github.com/spf13/cobra"
)

const (
	metricTopProducts      = "top-products"
	metricFilters          = "filters"
	metricMerchants        = "merchants"
	metricTrends           = "trends"
	metricMerchantProducts = "merchant-products"
	metricPolicy           = "policy"
)

var metrics = []string{
	metricTopProducts,
	metricFilters,
	metricMerchants,
	metricTrends,
	metricMerchantProducts,
	metricPolicy,
}

type reportFlags struct {
	client      string
	from        string
	to          string
	days        int
	keywords    []string
	merchant    string
	limit       int
	maxPosition int
}

var (
	rf reportFlags

	clientsCmd = &cobra.Command{
		Use:   "clients",
		Short: "List clients, or the keywords of --client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd.Context(), func(ctx context.Context, e *report.Engine) error {
				if rf.client != "" {
					return writeJSON(cmd.OutOrStdout(), dto.ConvertKeywordsToTable(e.Keywords(ctx, rf.client)))
				}
				return writeJSON(cmd.OutOrStdout(), dto.ConvertClientsToTable(e.Clients(ctx)))
			})
		},
	}

	reportCmd = &cobra.Command{
		Use:       "report <metric>",
		Short:     "Print one report as a JSON table",
		Long:      fmt.Sprintf("Print one report as a JSON table. Metrics: %v", metrics),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: metrics,
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == metricPolicy {
				// static lookup, no store needed
				cfg, _, err := loadConfig()
				if err != nil {
					return err
				}
				e := report.New(&cfg.Report, nil, nil)
				return writeJSON(cmd.OutOrStdout(), dto.ConvertShippingReturns(e.ShippingReturns(rf.merchant)))
			}
			return withEngine(cmd.Context(), func(ctx context.Context, e *report.Engine) error {
				out, err := runReport(ctx, e, args[0], rf, time.Now())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), out)
			})
		},
	}
)

func init() {
	clientsCmd.Flags().StringVar(&rf.client, "client", "", "client name")

	f := reportCmd.Flags()
	f.StringVar(&rf.client, "client", "", "client name")
	f.StringVar(&rf.from, "from", "", "first scrape date, YYYY-MM-DD")
	f.StringVar(&rf.to, "to", "", "last scrape date, YYYY-MM-DD")
	f.IntVar(&rf.days, "days", -1, "trailing window in days when no range is given, 0 for all dates (default from config)")
	f.StringArrayVar(&rf.keywords, "keyword", nil, "keyword, repeatable for trends")
	f.StringVar(&rf.merchant, "merchant", "", "merchant name")
	f.IntVar(&rf.limit, "limit", entity.DefaultLimit, "maximum rows")
	f.IntVar(&rf.maxPosition, "max-position", 1, "count appearances at or above this position")
}

// withEngine opens the store for the duration of fn.
func withEngine(ctx context.Context, fn func(ctx context.Context, e *report.Engine) error) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := store.New(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("cannot connect to store: %w", err)
	}
	defer s.Close()

	return fn(ctx, report.New(&cfg.Report, s, logger))
}

func runReport(ctx context.Context, e *report.Engine, metric string, f reportFlags, now time.Time) (dto.Table, error) {
	days := f.days
	if days < 0 {
		days = e.Config().DefaultDays
	}
	dr, err := report.ParseDateRange(f.from, f.to, days, now)
	if err != nil {
		return dto.Table{}, err
	}
	keyword := ""
	if len(f.keywords) > 0 {
		keyword = f.keywords[0]
	}

	switch metric {
	case metricTopProducts:
		return dto.ConvertTopProductsToTable(e.TopProducts(ctx, entity.TopProductsParams{
			Client:      f.client,
			MaxPosition: f.maxPosition,
			Keyword:     keyword,
			DateRange:   dr,
			Limit:       f.limit,
		})), nil
	case metricFilters:
		return dto.ConvertFilterCountsToTable(e.TopFilters(ctx, entity.FilterParams{
			Client:    f.client,
			Keyword:   keyword,
			DateRange: dr,
			Limit:     f.limit,
		})), nil
	case metricMerchants:
		return dto.ConvertMerchantCountsToTable(e.MerchantDistribution(ctx, entity.MerchantDistributionParams{
			Client:    f.client,
			DateRange: dr,
			Limit:     f.limit,
		})), nil
	case metricTrends:
		return dto.ConvertPositionTrendToTable(e.PositionTrends(ctx, entity.PositionTrendParams{
			Client:    f.client,
			Keywords:  f.keywords,
			DateRange: dr,
		})), nil
	case metricMerchantProducts:
		return dto.ConvertMerchantProductsToTable(e.MerchantProducts(ctx, entity.MerchantProductsParams{
			Client:    f.client,
			Merchant:  f.merchant,
			DateRange: dr,
			Limit:     f.limit,
		})), nil
	}
	return dto.Table{}, fmt.Errorf("unknown metric %q", metric)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
