package fetcher

// Fetcher retrieves the fully-loaded content of a marketplace
// search-results page. Implementations own everything about acquisition
// (browser automation, scrolling, rate limiting); extraction never does
// I/O of its own.
type Fetcher interface {
	// Fetch returns the page HTML for the given search URL.
	Fetch(url string) (string, error)
}
