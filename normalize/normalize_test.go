package normalize

import "testing"

func TestPrice(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
		wantOK   bool
	}{
		{"dollar with commas", "$15,995", 15995, true},
		{"plain integer", "8000", 8000, true},
		{"decimal", "$12,499.99", 12499.99, true},
		{"CAD prefix", "CA$21,500", 21500, true},
		{"not available", "N/A", 0, false},
		{"empty", "", 0, false},
		{"words only", "Free", 0, false},
		{"multiple dots", "1.2.3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Price(tt.input)
			if ok != tt.wantOK {
				t.Errorf("Price(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.expected {
				t.Errorf("Price(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMileage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantOK   bool
	}{
		{"thousands shorthand", "78K km", 78000, true},
		{"lowercase k", "78k km", 78000, true},
		{"comma separated", "45,000 km", 45000, true},
		{"plain", "89000 km", 89000, true},
		{"uppercase unit", "120K KM", 120000, true},
		{"embedded in subtitle", "Driven 45,000 km · Automatic", 45000, true},
		{"no unit", "some text", 0, false},
		{"miles not km", "45,000 mi", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Mileage(tt.input)
			if ok != tt.wantOK {
				t.Errorf("Mileage(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.expected {
				t.Errorf("Mileage(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMileageShorthandTriedFirst(t *testing.T) {
	// "78K km" must never parse as the literal 78
	got, ok := Mileage("78K km")
	if !ok || got != 78000 {
		t.Errorf("Mileage(\"78K km\") = %d, %v; want 78000, true", got, ok)
	}
}

func TestYear(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{"valid year", "2018", 2018, false},
		{"old year", "1999", 1999, false},
		{"make not year", "Honda", 0, true},
		{"empty", "", 0, true},
		{"decimal", "2018.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Year(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Year(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if got != tt.expected {
				t.Errorf("Year(%q) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAbsoluteURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"relative path", "/marketplace/item/123", "https://www.facebook.com/marketplace/item/123"},
		{"already absolute", "https://www.facebook.com/marketplace/item/456", "https://www.facebook.com/marketplace/item/456"},
		{"other host absolute", "http://example.com/car", "http://example.com/car"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsoluteURL(tt.input); got != tt.expected {
				t.Errorf("AbsoluteURL(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestItemURL(t *testing.T) {
	got := ItemURL("987654321")
	want := "https://www.facebook.com/marketplace/item/987654321"
	if got != want {
		t.Errorf("ItemURL() = %q, want %q", got, want)
	}
}
