// Package normalize converts the raw text fragments found in marketplace
// pages into typed listing fields. Both the embedded-JSON and the DOM
// extraction paths go through these functions so the numeric rules live
// in exactly one place.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// SiteOrigin is prefixed onto relative listing paths.
	SiteOrigin = "https://www.facebook.com"

	// ItemURLTemplate builds a canonical listing URL from a listing ID.
	ItemURLTemplate = "https://www.facebook.com/marketplace/item/%s"

	// PlaceholderImageURL is used when a listing carries no usable photo.
	PlaceholderImageURL = "https://static.xx.fbcdn.net/rsrc.php/v3/yQ/r/8SkRZ1o0i0K.png"
)

var (
	nonPriceChars = regexp.MustCompile(`[^\d.]`)

	// "78K km" means 78,000 km. This pattern must be tried before the
	// plain one, otherwise the value would parse as a literal 78.
	mileageThousandsRe = regexp.MustCompile(`(?i)(\d+)K\s*km`)
	mileagePlainRe     = regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*km`)
)

// Price strips everything that is not a digit or decimal point and parses
// the remainder as a number. The second return value reports whether the
// text actually parsed; on failure the price defaults to 0.
func Price(text string) (float64, bool) {
	cleaned := nonPriceChars.ReplaceAllString(text, "")
	if cleaned == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || price < 0 {
		return 0, false
	}
	return price, true
}

// Mileage parses a distance string into kilometers. It understands the
// "78K km" thousands shorthand and the "45,000 km" separator form. The
// second return value reports whether any pattern matched; on failure the
// mileage defaults to 0.
func Mileage(text string) (int, bool) {
	if m := mileageThousandsRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n * 1000, true
		}
	}
	if m := mileagePlainRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// Year parses the first token of a listing title as a model year. Unlike
// price and mileage there is no safe default, so a parse failure rejects
// the candidate record.
func Year(token string) (int, error) {
	year, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", token, err)
	}
	return year, nil
}

// AbsoluteURL returns raw unchanged when it already carries a scheme,
// otherwise it is treated as a site-relative path.
func AbsoluteURL(raw string) string {
	if strings.HasPrefix(raw, "http") {
		return raw
	}
	return SiteOrigin + raw
}

// ItemURL builds the canonical listing URL for a marketplace item ID.
func ItemURL(id string) string {
	return fmt.Sprintf(ItemURLTemplate, id)
}
