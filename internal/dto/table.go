package dto

import (
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
	"github.com/shopspring/decimal"
)

// Table is the caller-facing result of a report: ordered column names and
// one value per column in each row. A table without rows has no columns.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// ShippingReturns is the policy object returned for a merchant.
type ShippingReturns struct {
	Merchant     string `json:"merchant"`
	ShippingInfo string `json:"shipping_info"`
	ReturnsInfo  string `json:"returns_info"`
}

// Overview is the landing view of a client: its keywords, top products
// and merchant distribution over one window.
type Overview struct {
	Client      string `json:"client"`
	Keywords    Table  `json:"keywords"`
	TopProducts Table  `json:"top_products"`
	Merchants   Table  `json:"merchants"`
}

var (
	clientColumns          = []string{"id", "name"}
	keywordColumns         = []string{"id", "keyword"}
	topProductColumns      = []string{"product_id", "original_product_id", "title", "link", "merchant", "count"}
	filterColumns          = []string{"filter", "count"}
	merchantColumns        = []string{"merchant", "count"}
	trendColumns           = []string{"scrape_date", "keyword", "avg_position"}
	merchantProductColumns = []string{"product_id", "original_product_id", "title", "link", "rating", "price", "appearance_count"}
)

func newTable(columns []string, rows [][]any) Table {
	if len(rows) == 0 {
		return Table{Columns: []string{}, Rows: [][]any{}}
	}
	return Table{Columns: columns, Rows: rows}
}

// nullDecimal renders a decimal as a string, or nil when NULL.
func nullDecimal(d decimal.NullDecimal) any {
	if !d.Valid {
		return nil
	}
	return d.Decimal.String()
}

func ConvertClientsToTable(cs []entity.Client) Table {
	rows := make([][]any, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []any{c.Id, c.Name})
	}
	return newTable(clientColumns, rows)
}

func ConvertKeywordsToTable(ks []entity.Keyword) Table {
	rows := make([][]any, 0, len(ks))
	for _, k := range ks {
		rows = append(rows, []any{k.Id, k.Keyword})
	}
	return newTable(keywordColumns, rows)
}

func ConvertTopProductsToTable(tps []entity.TopProduct) Table {
	rows := make([][]any, 0, len(tps))
	for _, tp := range tps {
		rows = append(rows, []any{tp.ProductId, tp.OriginalProductId, tp.Title, tp.Link, tp.Merchant, tp.Count})
	}
	return newTable(topProductColumns, rows)
}

func ConvertFilterCountsToTable(fcs []entity.FilterCount) Table {
	rows := make([][]any, 0, len(fcs))
	for _, fc := range fcs {
		rows = append(rows, []any{fc.Filter, fc.Count})
	}
	return newTable(filterColumns, rows)
}

func ConvertMerchantCountsToTable(mcs []entity.MerchantCount) Table {
	rows := make([][]any, 0, len(mcs))
	for _, mc := range mcs {
		rows = append(rows, []any{mc.Merchant, mc.Count})
	}
	return newTable(merchantColumns, rows)
}

func ConvertPositionTrendToTable(points []entity.PositionTrendPoint) Table {
	rows := make([][]any, 0, len(points))
	for _, p := range points {
		rows = append(rows, []any{p.ScrapeDate.Format(entity.DateLayout), p.Keyword, p.AvgPosition})
	}
	return newTable(trendColumns, rows)
}

func ConvertMerchantProductsToTable(mps []entity.MerchantProduct) Table {
	rows := make([][]any, 0, len(mps))
	for _, mp := range mps {
		rows = append(rows, []any{
			mp.ProductId,
			mp.OriginalProductId,
			mp.Title,
			mp.Link,
			nullDecimal(mp.Rating),
			nullDecimal(mp.Price),
			mp.AppearanceCount,
		})
	}
	return newTable(merchantProductColumns, rows)
}

func ConvertShippingReturns(sr entity.ShippingReturns) ShippingReturns {
	return ShippingReturns{
		Merchant:     sr.Merchant,
		ShippingInfo: sr.ShippingInfo,
		ReturnsInfo:  sr.ReturnsInfo,
	}
}
