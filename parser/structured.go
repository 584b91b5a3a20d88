package parser

import (
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/hfariborzi/aiCarFinder/models"
	"github.com/hfariborzi/aiCarFinder/normalize"
)

// maxTraversalDepth bounds the descent into embedded payloads. The tree
// comes from an uncontrolled document, so a branch deeper than this is
// abandoned without aborting the rest of the extraction.
const maxTraversalDepth = 64

// Keys that mark an object as carrying a listing title. The feed uses
// either, depending on how the seller titled the listing.
var titleKeys = []string{"marketplace_listing_title", "custom_title"}

// StructuredExtractor finds listing-shaped objects inside the generic
// trees decoded from a page's embedded JSON payloads.
type StructuredExtractor struct{}

// NewStructuredExtractor creates a new StructuredExtractor instance
func NewStructuredExtractor() *StructuredExtractor {
	return &StructuredExtractor{}
}

// Extract walks every payload depth-first and collects a listing from
// each object that qualifies as listing-shaped. Input is never mutated;
// object keys are visited in sorted order so identical input always
// yields identical output ordering.
func (e *StructuredExtractor) Extract(payloads []interface{}) []models.Listing {
	type frame struct {
		value interface{}
		depth int
	}

	var listings []models.Listing

	stack := make([]frame, 0, len(payloads))
	for i := len(payloads) - 1; i >= 0; i-- {
		stack = append(stack, frame{payloads[i], 0})
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > maxTraversalDepth {
			continue
		}

		switch node := f.value.(type) {
		case map[string]interface{}:
			if isListingShaped(node) {
				if listing, ok := e.processCandidate(node); ok {
					listings = append(listings, listing)
				}
			}

			// Qualification never prunes the subtree: feed entries nest
			// listing objects inside generic containers, so every child
			// is still visited. Children are pushed in reverse so they
			// pop in sorted key order.
			keys := make([]string, 0, len(node))
			for k := range node {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for i := len(keys) - 1; i >= 0; i-- {
				stack = append(stack, frame{node[keys[i]], f.depth + 1})
			}
		case []interface{}:
			for i := len(node) - 1; i >= 0; i-- {
				stack = append(stack, frame{node[i], f.depth + 1})
			}
		}
	}

	return listings
}

// isListingShaped is the shape predicate: a node qualifies when it has a
// title-bearing key and a price-bearing key.
func isListingShaped(node map[string]interface{}) bool {
	if _, ok := node["listing_price"]; !ok {
		return false
	}
	for _, key := range titleKeys {
		if _, ok := node[key]; ok {
			return true
		}
	}
	return false
}

// processCandidate extracts a listing from a qualifying node. Any panic
// while reading the node is confined to that node so a single malformed
// candidate never aborts the traversal.
func (e *StructuredExtractor) processCandidate(node map[string]interface{}) (listing models.Listing, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: skipping malformed listing node: %v\n", r)
			ok = false
		}
	}()

	title := nodeTitle(node)
	tokens := strings.Fields(title)
	if len(tokens) < 3 {
		return models.Listing{}, false
	}

	year, err := normalize.Year(tokens[0])
	if err != nil {
		return models.Listing{}, false
	}

	listing = models.Listing{
		Year:     year,
		Make:     tokens[1],
		Model:    tokens[2],
		Price:    nodePrice(node),
		Mileage:  nodeMileage(node),
		URL:      normalize.ItemURL(nodeID(node)),
		ImageURL: nodeImageURL(node),
	}
	return listing, true
}

// nodeTitle resolves the title from whichever title key is present.
func nodeTitle(node map[string]interface{}) string {
	for _, key := range titleKeys {
		if s, ok := node[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// nodePrice reads listing_price.amount, which the feed encodes either as
// a JSON string or a bare number. An unparsable amount defaults to 0.
func nodePrice(node map[string]interface{}) float64 {
	priceObj, ok := node["listing_price"].(map[string]interface{})
	if !ok {
		return 0
	}
	switch amount := priceObj["amount"].(type) {
	case string:
		price, _ := normalize.Price(amount)
		return price
	case float64:
		if amount < 0 {
			return 0
		}
		return amount
	}
	return 0
}

// nodeMileage scans the subtitle list for the first entry carrying a
// distance unit and parses it.
func nodeMileage(node map[string]interface{}) int {
	subtitles, ok := node["custom_sub_titles_with_rendering_flags"].([]interface{})
	if !ok {
		return 0
	}
	for _, entry := range subtitles {
		entryMap, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		subtitle, ok := entryMap["subtitle"].(string)
		if !ok || !strings.Contains(strings.ToLower(subtitle), "km") {
			continue
		}
		if mileage, parsed := normalize.Mileage(subtitle); parsed {
			return mileage
		}
	}
	return 0
}

// nodeID reads the listing identifier, tolerating numeric encoding.
func nodeID(node map[string]interface{}) string {
	switch id := node["id"].(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return ""
}

// nodeImageURL falls through the known photo locations, then to the
// fixed placeholder.
func nodeImageURL(node map[string]interface{}) string {
	if uri := photoURI(node["primary_listing_photo"]); uri != "" {
		return uri
	}
	if photos, ok := node["listing_photos"].([]interface{}); ok && len(photos) > 0 {
		if uri := photoURI(photos[0]); uri != "" {
			return uri
		}
	}
	return normalize.PlaceholderImageURL
}

// photoURI digs image.uri out of a photo object.
func photoURI(photo interface{}) string {
	photoMap, ok := photo.(map[string]interface{})
	if !ok {
		return ""
	}
	image, ok := photoMap["image"].(map[string]interface{})
	if !ok {
		return ""
	}
	uri, _ := image["uri"].(string)
	return uri
}
