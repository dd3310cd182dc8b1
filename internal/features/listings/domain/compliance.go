package domain

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"slices"
	"strings"

	hood "hood-sync/internal/features/hood/domain"
)

var (
	ErrEnergyLabelURL   = errors.New("energy label URL must point to a PDF, JPG or PNG file")
	ErrProductInfoURL   = errors.New("product info URL must point to a PDF file")
	ErrEnergyClass      = errors.New("energy efficiency class must be one of A+++ to G")
	ErrAgeRating        = errors.New("age rating must be one of 0, 6, 12, 16, 18 or unknown")
	ErrVariantDimension = errors.New("too many variant dimensions")
)

// EnergyClasses are the EU energy efficiency classes, best first.
var EnergyClasses = []string{"A+++", "A++", "A+", "A", "B", "C", "D", "E", "F", "G"}

// AgeRatings are the accepted FSK/USK ratings.
var AgeRatings = []string{"0", "6", "12", "16", "18", "unknown"}

const energyClassProperty = "energyEfficiencyClass"

// CheckCompliance runs the local checks an item must pass before it is sent. It returns all
// violations joined, or nil.
func CheckCompliance(item hood.ItemPayload) error {
	var errs []error

	if item.EnergyLabelURL != "" && !hasExtension(item.EnergyLabelURL, ".pdf", ".jpg", ".jpeg", ".png") {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEnergyLabelURL, item.EnergyLabelURL))
	}
	if item.ProductInfoURL != "" && !hasExtension(item.ProductInfoURL, ".pdf") {
		errs = append(errs, fmt.Errorf("%w: %s", ErrProductInfoURL, item.ProductInfoURL))
	}

	if class := energyClass(item); class != "" && !slices.Contains(EnergyClasses, class) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrEnergyClass, class))
	}
	if rating := strings.TrimSpace(item.AgeRating); rating != "" && !slices.Contains(AgeRatings, strings.ToLower(rating)) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrAgeRating, rating))
	}

	if c := ClassifyVariants(item.ProductOptions); !c.Valid {
		errs = append(errs, fmt.Errorf("%w: %d dimensions (%s)", ErrVariantDimension, c.Distinct, strings.Join(c.Dimensions, ", ")))
	}

	return errors.Join(errs...)
}

// energyClass prefers the explicit field and falls back to the product property.
func energyClass(item hood.ItemPayload) string {
	if c := strings.TrimSpace(item.EnergyEfficiencyClass); c != "" {
		return strings.ToUpper(c)
	}
	for _, p := range item.ProductProperties {
		if strings.EqualFold(strings.TrimSpace(p.Name), energyClassProperty) {
			return strings.ToUpper(strings.TrimSpace(p.Value))
		}
	}
	return ""
}

// hasExtension checks the URL path, ignoring query and fragment.
func hasExtension(raw string, exts ...string) bool {
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	ext := strings.ToLower(path.Ext(p))
	return slices.Contains(exts, ext)
}
