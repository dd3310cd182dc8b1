package domain

import hood "hood-sync/internal/features/hood/domain"

// Tier is the Hood.de shop subscription package implied by an item's variants.
type Tier string

const (
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
	TierUnknown  Tier = "Unknown"
)

// VariantClassification describes the variant dimensions of an item.
type VariantClassification struct {
	Tier Tier `json:"tier"`
	// Distinct is the number of distinct dimension names across all options.
	Distinct int  `json:"distinct"`
	Valid    bool `json:"valid"`
	// MaxAllowed is the dimension limit of the tier; 0 for Silver and Unknown.
	MaxAllowed int `json:"max_allowed"`
	// Options is the number of product options.
	Options int `json:"options"`
	// Dimensions lists the names in first-seen order.
	Dimensions []string `json:"dimensions"`
}

// ClassifyVariants maps the distinct dimension names of options to a package tier.
// Names are compared exactly, so "Color" and "color" are two dimensions. Unnamed details
// are skipped.
func ClassifyVariants(options []hood.ProductOption) VariantClassification {
	seen := make(map[string]struct{})
	dims := []string{}
	for _, opt := range options {
		for _, d := range opt.Details {
			if d.Name == "" {
				continue
			}
			if _, ok := seen[d.Name]; ok {
				continue
			}
			seen[d.Name] = struct{}{}
			dims = append(dims, d.Name)
		}
	}

	c := VariantClassification{Distinct: len(dims), Options: len(options), Dimensions: dims}
	switch {
	case c.Distinct <= 1:
		c.Tier, c.MaxAllowed, c.Valid = TierSilver, 0, true
	case c.Distinct == 2:
		c.Tier, c.MaxAllowed = TierGold, 2
	case c.Distinct <= 5:
		c.Tier, c.MaxAllowed = TierPlatinum, 5
	default:
		c.Tier, c.MaxAllowed = TierUnknown, 0
	}
	if c.MaxAllowed > 0 {
		c.Valid = c.Distinct <= c.MaxAllowed
	}
	return c
}
