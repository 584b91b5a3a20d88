// Package storage persists extracted listings to disk.
package storage

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hfariborzi/aiCarFinder/models"
)

// CSVWriter saves listings to a CSV file.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a new CSVWriter targeting the given file path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// Write saves all listings to the CSV file, creating the output
// directory if it does not exist.
//
// CSV columns: year, make, model, price, mileage, url, image_url
func (w *CSVWriter) Write(listings []models.Listing) error {
	if len(listings) == 0 {
		log.Println("No listings to save")
		return nil
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create output dir: %w", err)
		}
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	writer.Write([]string{"year", "make", "model", "price", "mileage", "url", "image_url"})

	for _, l := range listings {
		writer.Write([]string{
			strconv.Itoa(l.Year),
			l.Make,
			l.Model,
			strconv.FormatFloat(l.Price, 'f', 2, 64),
			strconv.Itoa(l.Mileage),
			l.URL,
			l.ImageURL,
		})
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	log.Printf("Saved %d listings to %s\n", len(listings), w.path)
	return nil
}
