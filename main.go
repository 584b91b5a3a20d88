package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/hfariborzi/aiCarFinder/config"
	"github.com/hfariborzi/aiCarFinder/db"
	"github.com/hfariborzi/aiCarFinder/fetcher"
	"github.com/hfariborzi/aiCarFinder/models"
	"github.com/hfariborzi/aiCarFinder/notify"
	"github.com/hfariborzi/aiCarFinder/parser"
	"github.com/hfariborzi/aiCarFinder/query"
	"github.com/hfariborzi/aiCarFinder/sheets"
	"github.com/hfariborzi/aiCarFinder/storage"
	"github.com/hfariborzi/aiCarFinder/summary"
)

func main() {
	// Parse command line arguments
	location := flag.String("location", "", "Marketplace location slug, e.g. toronto (required)")
	minPrice := flag.Int("min-price", -1, "Minimum price in dollars")
	maxPrice := flag.Int("max-price", -1, "Maximum price in dollars")
	daysListed := flag.Int("days-listed", -1, "Only include listings posted within this many days")
	minMileage := flag.Int("min-mileage", -1, "Minimum mileage in km")
	maxMileage := flag.Int("max-mileage", -1, "Maximum mileage in km")
	minYear := flag.Int("min-year", -1, "Minimum model year")
	maxYear := flag.Int("max-year", -1, "Maximum model year")
	transmission := flag.String("transmission", "", "Transmission type: automatic or manual")
	carMake := flag.String("make", "", "Vehicle make, e.g. Honda")
	carModel := flag.String("model", "", "Vehicle model, e.g. Civic")
	output := flag.String("output", "", "CSV output path (default output/listings_<timestamp>.csv)")
	scrollCount := flag.Int("scroll-count", -1, "Number of page scrolls while fetching")
	scrollDelay := flag.Int("scroll-delay", -1, "Seconds to wait between scrolls")
	static := flag.Bool("static", false, "Fetch with a plain HTTP client instead of a headless browser")
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	spreadsheetURL := flag.String("spreadsheet", "", "Google Sheets URL to export results to (optional)")
	credentialsPath := flag.String("credentials", "", "Path to Google service account credentials JSON file (or use GOOGLE_SHEETS_CREDENTIALS env var)")
	flag.Parse()

	// Load .env if present
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	cfg := loadConfig(*configPath)

	if *location == "" {
		*location = cfg.Search.Location
	}
	if *location == "" {
		log.Fatalf("Error: -location is required")
	}

	if *transmission != "" && *transmission != models.TransmissionAutomatic && *transmission != models.TransmissionManual {
		log.Fatalf("Error: -transmission must be %q or %q", models.TransmissionAutomatic, models.TransmissionManual)
	}

	filters := models.SearchFilters{
		Location:     *location,
		MinPrice:     optionalInt(*minPrice),
		MaxPrice:     optionalInt(*maxPrice),
		DaysListed:   optionalInt(*daysListed),
		MinMileage:   optionalInt(*minMileage),
		MaxMileage:   optionalInt(*maxMileage),
		MinYear:      optionalInt(*minYear),
		MaxYear:      optionalInt(*maxYear),
		Transmission: optionalString(*transmission),
		Make:         optionalString(*carMake),
		Model:        optionalString(*carModel),
	}

	searchURL := query.BuildSearchURL(filters)
	fmt.Printf("Search URL: %s\n", searchURL)

	if *scrollCount < 0 {
		*scrollCount = cfg.Fetch.ScrollCount
	}
	if *scrollDelay < 0 {
		*scrollDelay = cfg.Fetch.ScrollDelaySeconds
	}

	// Fetch the results page. A fetch failure is not fatal: the pipeline
	// falls back to sample data so the rest of the run still exercises.
	html := fetchPage(searchURL, *static, cfg.Fetch.Headless, *scrollCount, *scrollDelay)

	pipeline := parser.NewPipeline()
	listings, err := pipeline.Extract(html)
	if err != nil {
		log.Fatalf("Extraction failed: %v\n", err)
	}

	stats := summary.Summarize(listings)
	printSummary(listings, stats)

	// CSV export
	csvPath := *output
	if csvPath == "" {
		dir := cfg.Output.Dir
		if dir == "" {
			dir = "output"
		}
		csvPath = filepath.Join(dir, fmt.Sprintf("listings_%s.csv", time.Now().Format("20060102_150405")))
	}
	writer := storage.NewCSVWriter(csvPath)
	if err := writer.Write(listings); err != nil {
		log.Printf("Warning: Failed to write CSV: %v\n", err)
	} else if len(listings) > 0 {
		fmt.Printf("\nSaved %d listings to %s\n", len(listings), csvPath)
	}

	// Persist to Postgres when configured
	saveToDatabase(searchURL, *location, listings)

	// Export to Google Sheets when a spreadsheet is given
	if *spreadsheetURL != "" {
		exportToSheets(*spreadsheetURL, *credentialsPath, searchURL, listings)
	}

	// Telegram notification when configured
	notifyTelegram(listings, stats)
}

// optionalInt converts a sentinel-defaulted flag value to an optional filter.
func optionalInt(v int) *int {
	if v < 0 {
		return nil
	}
	return &v
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// loadConfig loads configuration from file or returns defaults
func loadConfig(configPath string) *config.Config {
	var cfg *config.Config
	if _, err := os.Stat(configPath); err == nil {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			log.Printf("Warning: Failed to load config file: %v. Using defaults.\n", err)
			cfg = config.GetDefaultConfig()
		}
	} else {
		cfg = config.GetDefaultConfig()
	}
	return cfg
}

// fetchPage fetches the search results page, returning empty content on failure.
func fetchPage(url string, static bool, headless bool, scrollCount, scrollDelaySeconds int) string {
	if static {
		cf := fetcher.NewCollyFetcher()
		html, err := cf.Fetch(url)
		if err != nil {
			log.Printf("Warning: Static fetch failed: %v\n", err)
			return ""
		}
		return html
	}

	rf, err := fetcher.NewRodFetcher(headless, scrollCount, time.Duration(scrollDelaySeconds)*time.Second)
	if err != nil {
		log.Printf("Warning: Failed to start browser: %v\n", err)
		return ""
	}
	defer func() {
		if err := rf.Close(); err != nil {
			log.Printf("Warning: Failed to close browser: %v\n", err)
		}
	}()

	html, err := rf.Fetch(url)
	if err != nil {
		log.Printf("Warning: Fetch failed: %v\n", err)
		return ""
	}
	return html
}

// printSummary writes result statistics and the first few listings to stdout.
func printSummary(listings []models.Listing, stats summary.Summary) {
	fmt.Printf("\nFound %d listings\n", stats.Count)
	if stats.Count == 0 {
		return
	}

	if stats.MaxPrice > 0 {
		fmt.Printf("Price range: $%.0f - $%.0f (avg $%.0f)\n", stats.MinPrice, stats.MaxPrice, stats.AvgPrice)
	}
	if stats.MaxMileage > 0 {
		fmt.Printf("Mileage range: %d - %d km (avg %.0f km)\n", stats.MinMileage, stats.MaxMileage, stats.AvgMileage)
	}
	if stats.MaxYear > 0 {
		fmt.Printf("Year range: %d - %d\n", stats.MinYear, stats.MaxYear)
	}

	fmt.Println("\nListings:")
	fmt.Println("=========")
	shown := len(listings)
	if shown > 5 {
		shown = 5
	}
	for i := 0; i < shown; i++ {
		listing := listings[i]
		fmt.Printf("\n%d. %d %s %s\n", i+1, listing.Year, listing.Make, listing.Model)
		fmt.Printf("   Price: $%.2f\n", listing.Price)
		fmt.Printf("   Mileage: %d km\n", listing.Mileage)
		if listing.URL != "" {
			fmt.Printf("   Link: %s\n", listing.URL)
		}
	}
	if len(listings) > shown {
		fmt.Printf("\n... and %d more\n", len(listings)-shown)
	}
}

// saveToDatabase persists the search when a database is configured.
func saveToDatabase(searchURL, location string, listings []models.Listing) {
	if os.Getenv("DATABASE_URL") == "" && os.Getenv("DB_HOST") == "" {
		return
	}

	database, err := db.NewDB()
	if err != nil {
		log.Printf("Warning: Failed to initialize database: %v\n", err)
		return
	}
	defer database.Close()

	searchID, err := database.SaveSearch(searchURL, location, listings)
	if err != nil {
		log.Printf("Warning: Failed to save search: %v\n", err)
		return
	}
	fmt.Printf("Saved search %d with %d listings to database\n", searchID, len(listings))
}

// exportToSheets writes the listings to a new sheet in the given spreadsheet.
func exportToSheets(spreadsheetURL, credentialsPath, searchURL string, listings []models.Listing) {
	spreadsheetID := sheets.ExtractSpreadsheetID(spreadsheetURL)
	if spreadsheetID == "" {
		log.Printf("Warning: Could not extract spreadsheet ID from URL: %s\n", spreadsheetURL)
		return
	}

	writer, err := sheets.NewWriter(spreadsheetID, credentialsPath)
	if err != nil {
		log.Printf("Warning: Failed to initialize Google Sheets writer: %v\n", err)
		return
	}

	sheetName := fmt.Sprintf("Search_%s", time.Now().Format("20060102_150405"))
	_, _, err = writer.CreateSheetAndWriteListings(sheetName, listings, searchURL)
	if err != nil {
		log.Printf("Warning: Failed to write to Google Sheets: %v\n", err)
		return
	}
	fmt.Printf("Successfully wrote %d listings to Google Sheets\n", len(listings))
}

// notifyTelegram sends the results to Telegram when CAR_FINDER_TG and
// CAR_FINDER_TG_CHAT are set.
func notifyTelegram(listings []models.Listing, stats summary.Summary) {
	token := os.Getenv("CAR_FINDER_TG")
	chatStr := os.Getenv("CAR_FINDER_TG_CHAT")
	if token == "" || chatStr == "" {
		return
	}

	chatID, err := strconv.ParseInt(chatStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid CAR_FINDER_TG_CHAT: %v\n", err)
		return
	}

	notifier, err := notify.NewNotifier(token, chatID)
	if err != nil {
		log.Printf("Warning: Failed to initialize Telegram notifier: %v\n", err)
		return
	}
	if err := notifier.SendResults(listings, stats); err != nil {
		log.Printf("Warning: Failed to send Telegram notification: %v\n", err)
		return
	}
	fmt.Println("Sent results to Telegram")
}
