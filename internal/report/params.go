package report

import (
	"fmt"
	"time"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
)

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseDateRange builds the date filter from caller input. An explicit range
// needs both from and to; with only one of them, or none, the trailing
// window of days ending on now is used. Zero days means no filter.
func ParseDateRange(from, to string, days int, now time.Time) (*entity.DateRange, error) {
	if days < 0 {
		return nil, fmt.Errorf("invalid days %d", days)
	}
	var dr entity.DateRange
	var err error
	if from != "" {
		if dr.From, err = ParseDate(from); err != nil {
			return nil, err
		}
	}
	if to != "" {
		if dr.To, err = ParseDate(to); err != nil {
			return nil, err
		}
	}
	if from != "" && to != "" {
		return &dr, nil
	}
	return entity.LastDays(now, days), nil
}
