package fetcher

import (
	"fmt"
	"log"
	"time"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface with a plain HTTP
// collector. It cannot run the page's JavaScript, so it only works
// against saved or server-rendered content; the extraction pipeline's
// sample fallback covers the rest.
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher() *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	c.Limit(&colly.LimitRule{
		DomainGlob:  "*facebook.*",
		Parallelism: 1,
		Delay:       4 * time.Second,
	})

	c.OnError(func(r *colly.Response, err error) {
		log.Printf("Error fetching %s: %v\n", r.Request.URL, err)
	})

	return &CollyFetcher{
		collector: c,
	}
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	var html string

	cf.collector.OnResponse(func(r *colly.Response) {
		html = string(r.Body)
		log.Printf("Fetched %s (%d bytes)\n", r.Request.URL, len(r.Body))
	})

	if err := cf.collector.Visit(url); err != nil {
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}
	cf.collector.Wait()

	if html == "" {
		log.Println("Warning: empty response. The marketplace may require JavaScript rendering.")
	}

	return html, nil
}
