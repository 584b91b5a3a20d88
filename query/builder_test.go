package query

import (
	"strings"
	"testing"

	"github.com/hfariborzi/aiCarFinder/models"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestBuildSearchURL(t *testing.T) {
	tests := []struct {
		name     string
		filters  models.SearchFilters
		expected string
	}{
		{
			name:     "location only",
			filters:  models.SearchFilters{Location: "toronto"},
			expected: "https://www.facebook.com/marketplace/toronto/search?exact=false",
		},
		{
			name: "all filters in fixed order",
			filters: models.SearchFilters{
				Location:     "calgary",
				MinPrice:     intPtr(1000),
				MaxPrice:     intPtr(30000),
				DaysListed:   intPtr(7),
				MinMileage:   intPtr(10000),
				MaxMileage:   intPtr(150000),
				MinYear:      intPtr(2010),
				MaxYear:      intPtr(2020),
				Transmission: strPtr(models.TransmissionAutomatic),
				Make:         strPtr("Honda"),
				Model:        strPtr("Civic"),
			},
			expected: "https://www.facebook.com/marketplace/calgary/search?" +
				"minPrice=1000&maxPrice=30000&daysSinceListed=7&minMileage=10000&maxMileage=150000" +
				"&minYear=2010&maxYear=2020&transmissionType=automatic&query=HondaCivic&exact=false",
		},
		{
			name: "make without model",
			filters: models.SearchFilters{
				Location: "vancouver",
				Make:     strPtr("Toyota"),
			},
			expected: "https://www.facebook.com/marketplace/vancouver/search?query=Toyota&exact=false",
		},
		{
			name: "model without make",
			filters: models.SearchFilters{
				Location: "vancouver",
				Model:    strPtr("Corolla"),
			},
			expected: "https://www.facebook.com/marketplace/vancouver/search?query=Corolla&exact=false",
		},
		{
			name: "price bounds only",
			filters: models.SearchFilters{
				Location: "toronto",
				MinPrice: intPtr(5000),
				MaxPrice: intPtr(15000),
			},
			expected: "https://www.facebook.com/marketplace/toronto/search?minPrice=5000&maxPrice=15000&exact=false",
		},
		{
			name: "unknown location passed through verbatim",
			filters: models.SearchFilters{
				Location: "not-a-real-place",
			},
			expected: "https://www.facebook.com/marketplace/not-a-real-place/search?exact=false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildSearchURL(tt.filters); got != tt.expected {
				t.Errorf("BuildSearchURL() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuildSearchURLDeterministic(t *testing.T) {
	filters := models.SearchFilters{
		Location: "toronto",
		MinPrice: intPtr(1000),
		MaxYear:  intPtr(2022),
		Make:     strPtr("Mazda"),
	}

	first := BuildSearchURL(filters)
	for i := 0; i < 10; i++ {
		if got := BuildSearchURL(filters); got != first {
			t.Fatalf("BuildSearchURL() not deterministic: %q vs %q", got, first)
		}
	}
}

func TestBuildSearchURLOmitsEmptyParams(t *testing.T) {
	url := BuildSearchURL(models.SearchFilters{Location: "toronto"})
	for _, param := range []string{"minPrice", "maxPrice", "daysSinceListed", "minMileage", "maxMileage", "minYear", "maxYear", "transmissionType", "query"} {
		if strings.Contains(url, param) {
			t.Errorf("URL %q contains omitted parameter %q", url, param)
		}
	}
}
