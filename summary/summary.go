// Package summary derives aggregate statistics over a set of extracted
// listings for reporting.
package summary

import "github.com/hfariborzi/aiCarFinder/models"

// Summary holds count plus min/max/average for each numeric listing
// field. A field's statistics cover only the listings where that field
// is present and non-zero; defaulted zeros would otherwise drag the
// averages down. Count always covers every listing.
type Summary struct {
	Count int

	MinPrice float64
	MaxPrice float64
	AvgPrice float64

	MinMileage int
	MaxMileage int
	AvgMileage float64

	MinYear int
	MaxYear int
	AvgYear float64
}

// Summarize computes the statistics for a result set.
func Summarize(listings []models.Listing) Summary {
	s := Summary{Count: len(listings)}

	var priceSum float64
	var priceN int
	for _, l := range listings {
		if l.Price <= 0 {
			continue
		}
		if priceN == 0 || l.Price < s.MinPrice {
			s.MinPrice = l.Price
		}
		if l.Price > s.MaxPrice {
			s.MaxPrice = l.Price
		}
		priceSum += l.Price
		priceN++
	}
	if priceN > 0 {
		s.AvgPrice = priceSum / float64(priceN)
	}

	var mileageSum int
	var mileageN int
	for _, l := range listings {
		if l.Mileage <= 0 {
			continue
		}
		if mileageN == 0 || l.Mileage < s.MinMileage {
			s.MinMileage = l.Mileage
		}
		if l.Mileage > s.MaxMileage {
			s.MaxMileage = l.Mileage
		}
		mileageSum += l.Mileage
		mileageN++
	}
	if mileageN > 0 {
		s.AvgMileage = float64(mileageSum) / float64(mileageN)
	}

	var yearSum int
	var yearN int
	for _, l := range listings {
		if l.Year <= 0 {
			continue
		}
		if yearN == 0 || l.Year < s.MinYear {
			s.MinYear = l.Year
		}
		if l.Year > s.MaxYear {
			s.MaxYear = l.Year
		}
		yearSum += l.Year
		yearN++
	}
	if yearN > 0 {
		s.AvgYear = float64(yearSum) / float64(yearN)
	}

	return s
}
