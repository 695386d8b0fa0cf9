// Package shipping resolves the shipping and returns policy shown for a
// merchant. Lookups never fail: merchants without an entry get the default
// policy.
package shipping

import (
	"strings"

	"github.com/chrisprideC9/shopping-scraper-graphs/internal/entity"
)

const (
	DefaultShippingInfo = "Free shipping on orders over $25. Standard delivery in 3-5 business days."
	DefaultReturnsInfo  = "Free returns within 30 days of delivery. Must be in original packaging."
)

// Policy is a configured policy pair for one merchant.
type Policy struct {
	Shipping string `mapstructure:"shipping"`
	Returns  string `mapstructure:"returns"`
}

// Table maps merchant names to policies. The zero value is usable.
// Names loaded through viper arrive lowercased, so lookups fall back to a
// case-insensitive match.
type Table map[string]Policy

func (t Table) find(merchant string) (Policy, bool) {
	if p, ok := t[merchant]; ok {
		return p, true
	}
	for name, p := range t {
		if strings.EqualFold(name, merchant) {
			return p, true
		}
	}
	return Policy{}, false
}

// Lookup returns the policy of merchant, falling back to the default pair
// for unknown merchants and for empty fields of a configured one.
func (t Table) Lookup(merchant string) entity.ShippingReturns {
	sr := entity.ShippingReturns{
		Merchant:     merchant,
		ShippingInfo: DefaultShippingInfo,
		ReturnsInfo:  DefaultReturnsInfo,
	}
	p, ok := t.find(strings.TrimSpace(merchant))
	if !ok {
		return sr
	}
	if p.Shipping != "" {
		sr.ShippingInfo = p.Shipping
	}
	if p.Returns != "" {
		sr.ReturnsInfo = p.Returns
	}
	return sr
}

// Lookup returns the default policy pair for merchant.
func Lookup(merchant string) entity.ShippingReturns {
	return Table(nil).Lookup(merchant)
}
