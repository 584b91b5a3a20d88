package parser

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

const civicCard = `
	<div role="article">
		<a href="/marketplace/item/123"><img src="x.jpg"></a>
		<span>$15,995</span>
		<span>2018 Honda Civic EX</span>
		<span>Toronto, ON</span>
		<span>78K km</span>
	</div>`

func TestMarkupExtractorArticleContainers(t *testing.T) {
	doc := docFromHTML(t, `<html><body>`+civicCard+`</body></html>`)

	listings := NewMarkupExtractor().Extract(doc)
	if len(listings) != 1 {
		t.Fatalf("Extract() returned %d listings, want 1", len(listings))
	}

	got := listings[0]
	if got.Year != 2018 || got.Make != "Honda" || got.Model != "Civic" {
		t.Errorf("Extract() = %d %q %q, want 2018 Honda Civic", got.Year, got.Make, got.Model)
	}
	if got.Price != 15995 {
		t.Errorf("Extract() price = %v, want 15995", got.Price)
	}
	if got.Mileage != 78000 {
		t.Errorf("Extract() mileage = %d, want 78000", got.Mileage)
	}
	if got.URL != "https://www.facebook.com/marketplace/item/123" {
		t.Errorf("Extract() url = %q", got.URL)
	}
}

func TestMarkupExtractorClassFragmentFallback(t *testing.T) {
	// No role=article anywhere, so the class-fragment strategy kicks in.
	doc := docFromHTML(t, `<html><body>
		<div class="abc x1qjc9v5 def">
			<a href="https://www.facebook.com/marketplace/item/456"></a>
			<span>2017 Toyota Corolla LE</span>
			<span>$14,500</span>
			<span>65,000 km</span>
		</div>
	</body></html>`)

	listings := NewMarkupExtractor().Extract(doc)
	if len(listings) != 1 {
		t.Fatalf("Extract() returned %d listings, want 1", len(listings))
	}
	if listings[0].Mileage != 65000 {
		t.Errorf("Extract() mileage = %d, want 65000", listings[0].Mileage)
	}
	if listings[0].URL != "https://www.facebook.com/marketplace/item/456" {
		t.Errorf("Extract() url = %q (already-absolute URL must pass through)", listings[0].URL)
	}
}

func TestMarkupExtractorSkipsBadContainers(t *testing.T) {
	tests := []struct {
		name string
		card string
	}{
		{
			name: "no title span",
			card: `<div role="article"><a href="/x"></a><span>$9,000</span></div>`,
		},
		{
			name: "no price span",
			card: `<div role="article"><a href="/x"></a><span>2018 Honda Civic EX</span></div>`,
		},
		{
			name: "no link",
			card: `<div role="article"><span>2018 Honda Civic EX</span><span>$9,000</span></div>`,
		},
		{
			name: "title first token not numeric",
			card: `<div role="article"><a href="/x"></a><span>Honda Civic 2018</span><span>$9,000</span></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := docFromHTML(t, `<html><body>`+tt.card+`</body></html>`)
			if got := NewMarkupExtractor().Extract(doc); len(got) != 0 {
				t.Errorf("Extract() returned %d listings, want 0", len(got))
			}
		})
	}
}

func TestMarkupExtractorBadContainerDoesNotAbortBatch(t *testing.T) {
	doc := docFromHTML(t, `<html><body>
		<div role="article"><a href="/x"></a><span>$1,000</span></div>`+
		civicCard+`
	</body></html>`)

	listings := NewMarkupExtractor().Extract(doc)
	if len(listings) != 1 {
		t.Fatalf("Extract() returned %d listings, want 1", len(listings))
	}
	if listings[0].Make != "Honda" {
		t.Errorf("Extract() make = %q, want Honda", listings[0].Make)
	}
}

func TestMarkupExtractorDefaultMileage(t *testing.T) {
	doc := docFromHTML(t, `<html><body>
		<div role="article">
			<a href="/marketplace/item/789"></a>
			<span>2019 Mazda 3 Sport</span>
			<span>$17,995</span>
		</div>
	</body></html>`)

	listings := NewMarkupExtractor().Extract(doc)
	if len(listings) != 1 {
		t.Fatalf("Extract() returned %d listings, want 1", len(listings))
	}
	if listings[0].Mileage != 0 {
		t.Errorf("Extract() mileage = %d, want 0 default", listings[0].Mileage)
	}
}
