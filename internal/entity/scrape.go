package entity

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Client represents the clients table
type Client struct {
	Id   int64  `db:"id"`
	Name string `db:"name"`
}

// Keyword represents the keywords table. Keyword text is unique per client only.
type Keyword struct {
	Id       int64  `db:"id"`
	ClientId int64  `db:"client_id"`
	Keyword  string `db:"keyword"`
}

// ScrapeDate represents the scrape_dates table
type ScrapeDate struct {
	Id         int64     `db:"id"`
	ScrapeDate time.Time `db:"scrape_date"`
}

// Product represents the products table
type Product struct {
	Id        int64               `db:"id"`
	ProductId string              `db:"product_id"`
	Title     string              `db:"title"`
	Link      string              `db:"link"`
	Merchant  sql.NullString      `db:"merchant"`
	Rating    decimal.NullDecimal `db:"rating"`
	Price     decimal.NullDecimal `db:"price"`
}

// ProductScrape is one observation of a product for a keyword on a scrape date.
type ProductScrape struct {
	Id           int64          `db:"id"`
	ProductId    int64          `db:"product_id"`
	KeywordId    int64          `db:"keyword_id"`
	ScrapeDateId int64          `db:"scrape_date_id"`
	Position     int            `db:"position"`
	Filters      sql.NullString `db:"filters"`
}
