package parser

import "github.com/hfariborzi/aiCarFinder/models"

// SampleListings returns the fixed result set used when live extraction
// yields nothing, either because the page was degraded or because the
// caller is running offline. Each call returns a fresh slice.
func SampleListings() []models.Listing {
	return []models.Listing{
		{
			Year:     2018,
			Make:     "Honda",
			Model:    "Civic",
			Price:    15995,
			Mileage:  78500,
			URL:      "https://www.facebook.com/marketplace/item/sample1",
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/5/57/2018_Honda_Civic_SE_1.4_Front.jpg/1200px-2018_Honda_Civic_SE_1.4_Front.jpg",
		},
		{
			Year:     2017,
			Make:     "Toyota",
			Model:    "Corolla",
			Price:    14500,
			Mileage:  65000,
			URL:      "https://www.facebook.com/marketplace/item/sample2",
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/f/f6/2017_Toyota_Corolla_%28ZRE172R%29_Ascent_sedan_%282018-11-02%29_01.jpg/1200px-2017_Toyota_Corolla_%28ZRE172R%29_Ascent_sedan_%282018-11-02%29_01.jpg",
		},
		{
			Year:     2019,
			Make:     "Mazda",
			Model:    "3",
			Price:    17995,
			Mileage:  45000,
			URL:      "https://www.facebook.com/marketplace/item/sample3",
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/8/8c/2019_Mazda3_Sport_2.5L_AWD_%28North_America%29_front_NYIAS_2019.jpg/1200px-2019_Mazda3_Sport_2.5L_AWD_%28North_America%29_front_NYIAS_2019.jpg",
		},
		{
			Year:     2016,
			Make:     "Hyundai",
			Model:    "Elantra",
			Price:    12500,
			Mileage:  89000,
			URL:      "https://www.facebook.com/marketplace/item/sample4",
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/c/c5/2016_Hyundai_Elantra_%28AD%29_Elite_sedan_%282018-11-02%29_01.jpg/1200px-2016_Hyundai_Elantra_%28AD%29_Elite_sedan_%282018-11-02%29_01.jpg",
		},
		{
			Year:     2020,
			Make:     "Nissan",
			Model:    "Sentra",
			Price:    18995,
			Mileage:  32000,
			URL:      "https://www.facebook.com/marketplace/item/sample5",
			ImageURL: "https://upload.wikimedia.org/wikipedia/commons/thumb/f/fd/2020_Nissan_Sentra_SR%2C_front_12.21.19.jpg/1200px-2020_Nissan_Sentra_SR%2C_front_12.21.19.jpg",
		},
	}
}
