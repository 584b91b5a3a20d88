package db

import (
	"fmt"
	"time"

	"github.com/hfariborzi/aiCarFinder/models"
)

// Search represents a persisted search run
type Search struct {
	ID            int
	URL           string
	Location      string
	ListingsCount int
	CreatedAt     time.Time
}

// SaveSearch records a search run and all of its listings inside one
// transaction, returning the new search ID.
func (db *DB) SaveSearch(url, location string, listings []models.Listing) (int, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var searchID int
	err = tx.QueryRow(`
		INSERT INTO searches (url, location, listings_count)
		VALUES ($1, $2, $3)
		RETURNING id
	`, url, location, len(listings)).Scan(&searchID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert search: %w", err)
	}

	for _, l := range listings {
		_, err = tx.Exec(`
			INSERT INTO car_listings (search_id, year, make, model, price, mileage, url, image_url)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, searchID, l.Year, l.Make, l.Model, l.Price, l.Mileage, l.URL, l.ImageURL)
		if err != nil {
			return 0, fmt.Errorf("failed to insert listing: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return searchID, nil
}

// GetSearchListings returns the listings recorded for a search run.
func (db *DB) GetSearchListings(searchID int) ([]models.Listing, error) {
	rows, err := db.conn.Query(`
		SELECT year, make, model, price, mileage, url, COALESCE(image_url, '')
		FROM car_listings
		WHERE search_id = $1
		ORDER BY id
	`, searchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	defer rows.Close()

	var listings []models.Listing
	for rows.Next() {
		var l models.Listing
		if err := rows.Scan(&l.Year, &l.Make, &l.Model, &l.Price, &l.Mileage, &l.URL, &l.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// GetRecentSearches returns the most recent search runs, newest first.
func (db *DB) GetRecentSearches(limit int) ([]Search, error) {
	rows, err := db.conn.Query(`
		SELECT id, url, location, listings_count, created_at
		FROM searches
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var searches []Search
	for rows.Next() {
		var s Search
		if err := rows.Scan(&s.ID, &s.URL, &s.Location, &s.ListingsCount, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		searches = append(searches, s)
	}
	return searches, rows.Err()
}
