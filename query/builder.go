// Package query builds marketplace search URLs from a set of filters.
package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hfariborzi/aiCarFinder/models"
)

// BuildSearchURL assembles the search URL for the given filters. Parameter
// order is fixed and part of the contract with the content fetcher: price
// bounds, days listed, mileage bounds, year bounds, transmission, then a
// combined query term (make+model), then exact=false. Absent optional
// filters are omitted entirely rather than sent as empty parameters. The
// location slug is passed through verbatim; validating it is the caller's
// job.
func BuildSearchURL(filters models.SearchFilters) string {
	baseURL := fmt.Sprintf("https://www.facebook.com/marketplace/%s/search?", filters.Location)

	var params []string
	appendInt := func(name string, value *int) {
		if value != nil {
			params = append(params, name+"="+strconv.Itoa(*value))
		}
	}

	appendInt("minPrice", filters.MinPrice)
	appendInt("maxPrice", filters.MaxPrice)
	appendInt("daysSinceListed", filters.DaysListed)
	appendInt("minMileage", filters.MinMileage)
	appendInt("maxMileage", filters.MaxMileage)
	appendInt("minYear", filters.MinYear)
	appendInt("maxYear", filters.MaxYear)

	if filters.Transmission != nil {
		params = append(params, "transmissionType="+*filters.Transmission)
	}

	// Make and model collapse into a single free-text query term.
	switch {
	case filters.Make != nil && filters.Model != nil:
		params = append(params, "query="+*filters.Make+*filters.Model)
	case filters.Make != nil:
		params = append(params, "query="+*filters.Make)
	case filters.Model != nil:
		params = append(params, "query="+*filters.Model)
	}

	params = append(params, "exact=false")

	return baseURL + strings.Join(params, "&")
}
