package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hfariborzi/aiCarFinder/models"
	"github.com/hfariborzi/aiCarFinder/normalize"
)

// containerStrategy locates candidate listing containers in a document.
// Strategies are evaluated in priority order and the first one that
// matches anything wins, so new heuristics can be appended without
// touching the existing ones.
type containerStrategy func(doc *goquery.Document) *goquery.Selection

// The marketplace obfuscates its class names, so after the ARIA-role
// selector the fallback matches on a class fragment rather than an exact
// name.
var containerStrategies = []containerStrategy{
	func(doc *goquery.Document) *goquery.Selection {
		return doc.Find("div[role='article']")
	},
	func(doc *goquery.Document) *goquery.Selection {
		return doc.Find("div[class*='x1qjc9v5']")
	},
}

// MarkupExtractor is the fallback that scans the rendered DOM for listing
// blocks when no usable embedded JSON exists.
type MarkupExtractor struct{}

// NewMarkupExtractor creates a new MarkupExtractor instance
func NewMarkupExtractor() *MarkupExtractor {
	return &MarkupExtractor{}
}

// Extract collects listings from the heuristically identified containers.
// A container missing a required field is skipped; extraction always
// proceeds to the next one.
func (e *MarkupExtractor) Extract(doc *goquery.Document) []models.Listing {
	var containers *goquery.Selection
	for _, strategy := range containerStrategies {
		if sel := strategy(doc); sel.Length() > 0 {
			containers = sel
			break
		}
	}
	if containers == nil {
		return nil
	}

	var listings []models.Listing
	containers.Each(func(i int, container *goquery.Selection) {
		if listing, ok := e.extractContainer(container); ok {
			listings = append(listings, listing)
		}
	})
	return listings
}

// extractContainer pulls a single listing out of one container element.
func (e *MarkupExtractor) extractContainer(container *goquery.Selection) (models.Listing, bool) {
	titleText := findSpanText(container, looksLikeTitle)
	if titleText == "" {
		return models.Listing{}, false
	}

	priceText := findSpanText(container, func(text string) bool {
		return strings.Contains(text, "$")
	})
	if priceText == "" {
		return models.Listing{}, false
	}

	href, hasHref := container.Find("a[href]").First().Attr("href")
	if !hasHref {
		return models.Listing{}, false
	}

	mileageText := findSpanText(container, func(text string) bool {
		return strings.Contains(strings.ToLower(text), "km")
	})
	if mileageText == "" {
		mileageText = "0 km"
	}

	tokens := strings.Fields(titleText)
	if len(tokens) < 3 {
		return models.Listing{}, false
	}
	year, err := normalize.Year(tokens[0])
	if err != nil {
		return models.Listing{}, false
	}

	price, _ := normalize.Price(priceText)
	mileage, _ := normalize.Mileage(mileageText)

	return models.Listing{
		Year:     year,
		Make:     tokens[1],
		Model:    tokens[2],
		Price:    price,
		Mileage:  mileage,
		URL:      normalize.AbsoluteURL(href),
		ImageURL: normalize.PlaceholderImageURL,
	}, true
}

// looksLikeTitle reports whether a text fragment reads like a vehicle
// title: at least three whitespace tokens with a purely numeric first
// token (the model year).
func looksLikeTitle(text string) bool {
	tokens := strings.Fields(text)
	return len(tokens) >= 3 && allDigits(tokens[0])
}

// findSpanText returns the trimmed text of the first span matching the
// predicate.
func findSpanText(container *goquery.Selection, match func(string) bool) string {
	var found string
	container.Find("span").EachWithBreak(func(i int, span *goquery.Selection) bool {
		text := strings.TrimSpace(span.Text())
		if text != "" && match(text) {
			found = text
			return false
		}
		return true
	})
	return found
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
