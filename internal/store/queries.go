package store

import (
	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
)

// All statements bind user input through :name placeholders. The only SQL
// composed at runtime are the constant condition fragments below.

const scrapeJoins = `
		FROM product_scrapes ps
		JOIN products p ON ps.product_id = p.id
		JOIN keywords k ON ps.keyword_id = k.id
		JOIN scrape_dates sd ON ps.scrape_date_id = sd.id`

const dateRangeCond = `
		AND sd.scrape_date >= :fromDate
		AND sd.scrape_date <= :toDate`

// dateRange adds the inclusive date bounds to params and returns the
// condition to append, or "" when dr is nil.
func dateRange(params map[string]any, dr *entity.DateRange) string {
	if dr == nil {
		return ""
	}
	params["fromDate"] = dr.From.Format(entity.DateLayout)
	params["toDate"] = dr.To.Format(entity.DateLayout)
	return dateRangeCond
}

func listClientsQuery() entity.Query {
	return entity.Query{
		Name: "list clients",
		SQL:  `SELECT id, name FROM clients ORDER BY name, id`,
	}
}

func listKeywordsQuery(clientId int64) entity.Query {
	return entity.Query{
		Name: "list keywords",
		SQL: `
		SELECT id, client_id, keyword
		FROM keywords
		WHERE client_id = :clientId
		ORDER BY keyword, id`,
		Params: map[string]any{"clientId": clientId},
	}
}

func resolveClientQuery(name string) entity.Query {
	return entity.Query{
		Name:   "resolve client",
		SQL:    `SELECT id FROM clients WHERE name = :name ORDER BY id LIMIT 1`,
		Params: map[string]any{"name": name},
	}
}

func resolveKeywordsQuery(clientId int64, keywords []string) entity.Query {
	return entity.Query{
		Name: "resolve keywords",
		SQL: `
		SELECT id, client_id, keyword
		FROM keywords
		WHERE client_id = :clientId AND keyword IN (:keywords)
		ORDER BY id`,
		Params: map[string]any{"clientId": clientId, "keywords": keywords},
	}
}

func topProductsQuery(clientId int64, maxPosition int, keywordId *int64, dr *entity.DateRange, limit int) entity.Query {
	params := map[string]any{
		"clientId":    clientId,
		"maxPosition": maxPosition,
		"limit":       limit,
	}
	query := `
		SELECT
			p.id AS product_id,
			p.product_id AS original_product_id,
			p.title AS title,
			p.link AS link,
			p.merchant AS merchant,
			COUNT(ps.id) AS count` + scrapeJoins + `
		WHERE k.client_id = :clientId
		AND ps.position <= :maxPosition`
	if keywordId != nil {
		query += `
		AND k.id = :keywordId`
		params["keywordId"] = *keywordId
	}
	query += dateRange(params, dr) + `
		GROUP BY p.id, p.product_id, p.title, p.link, p.merchant
		ORDER BY count DESC, p.id ASC
		LIMIT :limit`
	return entity.Query{Name: "top products", SQL: query, Params: params}
}

func rawFiltersQuery(clientId, keywordId int64, dr *entity.DateRange) entity.Query {
	params := map[string]any{
		"clientId":  clientId,
		"keywordId": keywordId,
	}
	query := `
		SELECT ps.filters AS filters` + scrapeJoins + `
		WHERE k.client_id = :clientId
		AND ps.keyword_id = :keywordId
		AND ps.filters IS NOT NULL
		AND ps.filters <> ''` + dateRange(params, dr) + `
		ORDER BY ps.id`
	return entity.Query{Name: "raw filters", SQL: query, Params: params}
}

func merchantDistributionQuery(clientId int64, dr *entity.DateRange, limit int) entity.Query {
	params := map[string]any{
		"clientId": clientId,
		"limit":    limit,
	}
	query := `
		SELECT
			COALESCE(NULLIF(p.merchant, ''), 'Unknown') AS merchant,
			COUNT(DISTINCT p.id) AS count` + scrapeJoins + `
		WHERE k.client_id = :clientId` + dateRange(params, dr) + `
		GROUP BY COALESCE(NULLIF(p.merchant, ''), 'Unknown')
		ORDER BY count DESC, merchant ASC
		LIMIT :limit`
	return entity.Query{Name: "merchant distribution", SQL: query, Params: params}
}

func positionTrendQuery(clientId int64, keywordIds []int64, dr *entity.DateRange) entity.Query {
	params := map[string]any{
		"clientId":   clientId,
		"keywordIds": keywordIds,
	}
	query := `
		SELECT
			sd.scrape_date AS scrape_date,
			k.keyword AS keyword,
			AVG(ps.position) AS avg_position` + scrapeJoins + `
		WHERE k.client_id = :clientId
		AND k.id IN (:keywordIds)` + dateRange(params, dr) + `
		GROUP BY sd.scrape_date, k.keyword
		ORDER BY sd.scrape_date ASC, k.keyword ASC`
	return entity.Query{Name: "position trend", SQL: query, Params: params}
}

func merchantProductsQuery(clientId int64, merchant string, dr *entity.DateRange, limit int) entity.Query {
	params := map[string]any{
		"clientId": clientId,
		"merchant": merchant,
		"limit":    limit,
	}
	merchantCond := `
		AND p.merchant = :merchant`
	if merchant == entity.UnknownMerchant {
		merchantCond = `
		AND (p.merchant IS NULL OR p.merchant = '' OR p.merchant = :merchant)`
	}
	query := `
		SELECT
			p.id AS product_id,
			p.product_id AS original_product_id,
			p.title AS title,
			p.link AS link,
			p.rating AS rating,
			p.price AS price,
			COUNT(ps.id) AS appearance_count` + scrapeJoins + `
		WHERE k.client_id = :clientId` + merchantCond + dateRange(params, dr) + `
		GROUP BY p.id, p.product_id, p.title, p.link, p.rating, p.price
		ORDER BY appearance_count DESC, p.id ASC
		LIMIT :limit`
	return entity.Query{Name: "merchant products", SQL: query, Params: params}
}
