package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/hfariborzi/aiCarFinder/models"
)

func TestCSVWriterWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "listings.csv")

	listings := []models.Listing{
		{Year: 2018, Make: "Honda", Model: "Civic", Price: 15995, Mileage: 78500,
			URL: "https://www.facebook.com/marketplace/item/1", ImageURL: "https://example.com/1.jpg"},
		{Year: 2017, Make: "Toyota", Model: "Corolla", Price: 14500, Mileage: 65000,
			URL: "https://www.facebook.com/marketplace/item/2", ImageURL: "https://example.com/2.jpg"},
	}

	if err := NewCSVWriter(path).Write(listings); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read CSV: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 listings", len(rows))
	}
	if rows[0][0] != "year" || rows[0][6] != "image_url" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][0] != "2018" || rows[1][1] != "Honda" || rows[1][3] != "15995.00" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][4] != "65000" {
		t.Errorf("unexpected mileage in second row: %v", rows[2])
	}
}

func TestCSVWriterEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.csv")

	if err := NewCSVWriter(path).Write(nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Write(nil) should not create a file")
	}
}
