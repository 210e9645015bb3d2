package portfolio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deptltd/dept-portal/internal/common"
	"github.com/deptltd/dept-portal/internal/models"
)

// ParseAssets parses a composition string of the form "USDT:60 BTC:20 ETH:20"
// into an ordered asset list. Tokens without a ':' separator are skipped.
// Names are trimmed; percentages use leading-numeric-prefix parsing, so a
// non-numeric value yields 0 and the entry is dropped along with any entry
// whose name is empty or whose percentage is not positive.
func ParseAssets(composition string) []models.Asset {
	assets := []models.Asset{}

	for _, token := range strings.Fields(composition) {
		name, pct, found := strings.Cut(token, ":")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		percentage := parseFloatPrefix(strings.TrimSpace(pct))

		if name != "" && percentage > 0 {
			assets = append(assets, models.Asset{
				Name:       name,
				Percentage: percentage,
			})
		}
	}

	return assets
}

// ValidateAssets parses a composition string and checks that it yields at
// least one asset and that the percentages sum to exactly 100. The comparison
// is exact float equality, matching the published document contract.
// On failure the returned error is a *ValidationError with a user-facing
// message.
func ValidateAssets(composition string) ([]models.Asset, error) {
	assets := ParseAssets(composition)

	if len(assets) == 0 {
		return nil, &ValidationError{Message: "no assets specified"}
	}

	total := 0.0
	for _, a := range assets {
		total += a.Percentage
	}

	if total != 100 {
		return nil, &ValidationError{
			Message: fmt.Sprintf("asset percentages must sum to exactly 100%%, got: %s%%", common.FormatPercent(total)),
		}
	}

	return assets, nil
}

// FormatComposition renders an asset list back into its textual encoding,
// "USDT:60 BTC:20 ETH:20". Used to prefill the edit form.
func FormatComposition(assets []models.Asset) string {
	parts := make([]string, 0, len(assets))
	for _, a := range assets {
		parts = append(parts, a.Name+":"+common.FormatPercent(a.Percentage))
	}
	return strings.Join(parts, " ")
}

// parseFloatPrefix parses the longest numeric prefix of s as a float:
// "60" -> 60, "60x" -> 60, "abc" -> 0. An optional sign, decimal point and
// exponent are accepted as long as they keep the prefix parseable.
func parseFloatPrefix(s string) float64 {
	last := 0
	for i := 1; i <= len(s); i++ {
		if _, err := strconv.ParseFloat(s[:i], 64); err == nil {
			last = i
		}
	}
	if last == 0 {
		return 0
	}
	v, _ := strconv.ParseFloat(s[:last], 64)
	return v
}
