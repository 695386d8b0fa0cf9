// Package normalize converts rows returned by the store adapter into the
// typed rows of each query shape. Nothing untyped leaves this package.
package normalize

import (
	"fmt"
	"time"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// reader pulls typed columns out of a row and keeps the first error.
type reader struct {
	row entity.Row
	err error
}

func (r *reader) value(col string) (any, bool) {
	if r.err != nil {
		return nil, false
	}
	v, ok := r.row[col]
	if !ok {
		r.err = fmt.Errorf("missing column %s", col)
		return nil, false
	}
	return v, true
}

func (r *reader) fail(col string, err error) {
	r.err = fmt.Errorf("column %s: %w", col, err)
}

func (r *reader) int64(col string) int64 {
	v, ok := r.value(col)
	if !ok {
		return 0
	}
	if v == nil {
		r.fail(col, fmt.Errorf("unexpected null"))
		return 0
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		r.fail(col, err)
	}
	return n
}

func (r *reader) float64(col string) float64 {
	v, ok := r.value(col)
	if !ok {
		return 0
	}
	if v == nil {
		r.fail(col, fmt.Errorf("unexpected null"))
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		r.fail(col, err)
	}
	return f
}

// string reads a text column; NULL becomes "".
func (r *reader) string(col string) string {
	v, ok := r.value(col)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		r.fail(col, err)
	}
	return s
}

func (r *reader) decimal(col string) decimal.NullDecimal {
	v, ok := r.value(col)
	if !ok {
		return decimal.NullDecimal{}
	}
	d, err := Decimal(v)
	if err != nil {
		r.fail(col, err)
	}
	return d
}

func (r *reader) date(col string) time.Time {
	v, ok := r.value(col)
	if !ok {
		return time.Time{}
	}
	t, err := Date(v)
	if err != nil {
		r.fail(col, err)
	}
	return t
}

// Date coerces a store date value (time.Time, "2006-01-02", RFC 3339 or the
// byte form of either) to midnight UTC of that calendar day.
func Date(v any) (time.Time, error) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("unexpected null date")
	case time.Time:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	case []byte:
		v = string(t)
	}
	if s, ok := v.(string); ok {
		if t, err := time.Parse(entity.DateLayout, s); err == nil {
			return t, nil
		}
	}
	t, err := cast.ToTimeInDefaultLocationE(v, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// Decimal coerces a numeric store value; NULL is an invalid NullDecimal.
func Decimal(v any) (decimal.NullDecimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.NullDecimal{}, nil
	case decimal.Decimal:
		return decimal.NewNullDecimal(n), nil
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(n)), nil
	case float32:
		return decimal.NewNullDecimal(decimal.NewFromFloat32(n)), nil
	case []byte:
		v = string(n)
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return decimal.NullDecimal{}, nil
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.NullDecimal{}, err
		}
		return decimal.NewNullDecimal(d), nil
	}
	i, err := cast.ToInt64E(v)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(decimal.NewFromInt(i)), nil
}

func rowErr(i int, err error) error {
	return fmt.Errorf("row %d: %w", i, err)
}

func Clients(rows []entity.Row) ([]entity.Client, error) {
	out := make([]entity.Client, 0, len(rows))
	for i, row := range rows {
		r := reader{row: row}
		c := entity.Client{
			Id:   r.int64("id"),
			Name: r.string("name"),
		}
		if r.err != nil {
			return nil, rowErr(i, r.err)
		}
		out = append(out, c)
	}
	return out, nil
}

func Keywords(rows []entity.Row) ([]entity.Keyword, error) {
	out := make([]entity.Keyword, 0, len(rows))
	for i, row := range rows {
		r := reader{row: row}
		k := entity.Keyword{
			Id:       r.int64("id"),
			ClientId: r.int64("client_id"),
			Keyword:  r.string("keyword"),
		}
		if r.err != nil {
			return nil, rowErr(i, r.err)
		}
		out = append(out, k)
	}
	return out, nil
}

// Ids reads a single id column.
func Ids(rows []entity.Row) ([]int64, error) {
	out := make([]int64, 0, len(rows))
	for i, row := range rows {
		r := reader{row: row}
		id := r.int64("id")
		if r.err != nil {
			return nil, rowErr(i, r.err)
		}
		out = append(out, id)
	}
	return out, nil
}

func TopProducts(rows []entity.Row) ([]entity.TopProduct, error) {
	out := make([]entity.TopProduct, 0, len(rows))
	for i, row := range rows {
		r := reader{row: row}
		tp := entity.TopProduct{
			ProductId:         r.int64("product_id"),
			OriginalProductId: r.string("original_product_id"),
			Title:             r.string("title"),
			Link:              r.string("link"),
			Merchant:          r.string("merchant"),
			Count:             r.int64("count"),
		}
		if r.err != nil {
			return nil, rowErr(i, r.err)
		}
		out = append(out, tp)
	}
	return out, nil
}

// FilterStrings reads the raw filters column, skipping NULLs.
func FilterStrings(rows []entity.Row) ([]string, error) {
	out := make([]string, 0, len(rows))
	for i, row := range rows {
		r := reader{row: row}
		s := r.string("filters")
		if r.err != nil {
			return nil, rowErr(i, r.err)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func MerchantCounts(rows []entity.Row) ([]entity.MerchantCount, error) {
	out := make([]entity.MerchantCount, 0, len(rows))
	for i, row := range rows {
		r := reader{row: row}
		mc := entity.MerchantCount{
			Merchant: r.string("merchant"),
			Count:    r.int64("count"),
		}
		if r.err != nil {
			return nil, rowErr(i, r.err)
		}
		out = append(out, mc)
	}
	return out, nil
}

func PositionTrend(rows []entity.Row) ([]entity.PositionTrendPoint, error) {
	out := make([]entity.PositionTrendPoint, 0, len(rows))
	for i, row := range rows {
		r := reader{row: row}
		p := entity.PositionTrendPoint{
			ScrapeDate:  r.date("scrape_date"),
			Keyword:     r.string("keyword"),
			AvgPosition: r.float64("avg_position"),
		}
		if r.err != nil {
			return nil, rowErr(i, r.err)
		}
		out = append(out, p)
	}
	return out, nil
}

func MerchantProducts(rows []entity.Row) ([]entity.MerchantProduct, error) {
	out := make([]entity.MerchantProduct, 0, len(rows))
	for i, row := range rows {
		r := reader{row: row}
		mp := entity.MerchantProduct{
			ProductId:         r.int64("product_id"),
			OriginalProductId: r.string("original_product_id"),
			Title:             r.string("title"),
			Link:              r.string("link"),
			Rating:            r.decimal("rating"),
			Price:             r.decimal("price"),
			AppearanceCount:   r.int64("appearance_count"),
		}
		if r.err != nil {
			return nil, rowErr(i, r.err)
		}
		out = append(out, mp)
	}
	return out, nil
}
