package models

// Listing represents a single vehicle listing extracted from a
// marketplace search-results page.
type Listing struct {
	Year     int
	Make     string
	Model    string
	Price    float64
	Mileage  int // kilometers
	URL      string
	ImageURL string
}

// Transmission types accepted by the marketplace search
const (
	TransmissionAutomatic = "automatic"
	TransmissionManual    = "manual"
)

// SearchFilters holds the criteria used to build a marketplace search URL.
// Location is required; every other field is optional and a nil pointer
// means "omit the parameter", not a wildcard value.
type SearchFilters struct {
	Location     string
	MinPrice     *int
	MaxPrice     *int
	DaysListed   *int
	MinMileage   *int
	MaxMileage   *int
	MinYear      *int
	MaxYear      *int
	Transmission *string // TransmissionAutomatic or TransmissionManual
	Make         *string
	Model        *string
}
