package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultLimit is used when a request carries no positive limit.
	DefaultLimit = 10
	// MaxLimit caps every result size.
	MaxLimit = 1000
	// UnknownMerchant labels products without a merchant.
	UnknownMerchant = "Unknown"
	// DateLayout is the wire and storage layout of scrape dates.
	DateLayout = "2006-01-02"
)

// DateRange is an inclusive [From, To] range of scrape dates.
// A nil *DateRange means no date filter.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Valid reports whether the range is usable as a filter.
func (dr *DateRange) Valid() bool {
	if dr == nil {
		return true
	}
	return !dr.From.IsZero() && !dr.To.IsZero() && !dr.From.After(dr.To)
}

// LastDays returns the range of n days ending on (and including) now.
func LastDays(now time.Time, n int) *DateRange {
	if n <= 0 {
		return nil
	}
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return &DateRange{From: to.AddDate(0, 0, -(n - 1)), To: to}
}

// NormalizeLimit applies DefaultLimit and MaxLimit.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

type TopProductsParams struct {
	Client      string
	MaxPosition int
	// Keyword is optional; empty means all keywords of the client.
	Keyword   string
	DateRange *DateRange
	Limit     int
}

type FilterParams struct {
	Client    string
	Keyword   string
	DateRange *DateRange
	Limit     int
}

type MerchantDistributionParams struct {
	Client    string
	DateRange *DateRange
	Limit     int
}

type PositionTrendParams struct {
	Client    string
	Keywords  []string
	DateRange *DateRange
}

type MerchantProductsParams struct {
	Client    string
	Merchant  string
	DateRange *DateRange
	Limit     int
}

// TopProduct is a product ranked by how often it appeared at or above a position.
type TopProduct struct {
	ProductId         int64  `db:"product_id"`
	OriginalProductId string `db:"original_product_id"`
	Title             string `db:"title"`
	Link              string `db:"link"`
	Merchant          string `db:"merchant"`
	Count             int64  `db:"count"`
}

// FilterCount is the number of scrapes an individual filter label appeared in.
type FilterCount struct {
	Filter string
	Count  int64
}

// MerchantCount is the number of distinct products attributed to a merchant.
type MerchantCount struct {
	Merchant string `db:"merchant"`
	Count    int64  `db:"count"`
}

// PositionTrendPoint is the average position of a keyword on one scrape date.
type PositionTrendPoint struct {
	ScrapeDate  time.Time `db:"scrape_date"`
	Keyword     string    `db:"keyword"`
	AvgPosition float64   `db:"avg_position"`
}

// MerchantProduct is a product of one merchant with its appearance count.
type MerchantProduct struct {
	ProductId         int64               `db:"product_id"`
	OriginalProductId string              `db:"original_product_id"`
	Title             string              `db:"title"`
	Link              string              `db:"link"`
	Rating            decimal.NullDecimal `db:"rating"`
	Price             decimal.NullDecimal `db:"price"`
	AppearanceCount   int64               `db:"appearance_count"`
}

// ShippingReturns holds the policy texts shown for a merchant.
type ShippingReturns struct {
	Merchant     string
	ShippingInfo string
	ReturnsInfo  string
}
