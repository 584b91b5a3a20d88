package fetcher

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// RodFetcher implements the Fetcher interface with a headless browser.
// The marketplace renders its results with JavaScript and loads more of
// them on scroll, so a plain HTTP client only ever sees the shell page.
type RodFetcher struct {
	browser     *rod.Browser
	scrollCount int
	scrollDelay time.Duration
}

// NewRodFetcher launches a browser and connects to it. scrollCount and
// scrollDelay control how far down the results feed the fetcher loads
// before capturing the page.
func NewRodFetcher(headless bool, scrollCount int, scrollDelay time.Duration) (*RodFetcher, error) {
	l := launcher.New().
		Headless(headless).
		Set("disable-blink-features", "AutomationControlled").
		NoSandbox(true).
		Leakless(false). // leakless binary trips antivirus on some hosts
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		Set("no-first-run").
		Set("no-default-browser-check").
		Set("disable-extensions").
		Set("mute-audio")

	// Prefer a system Chrome/Chromium over downloading one.
	chromePaths := []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
	}
	for _, path := range chromePaths {
		if _, err := os.Stat(path); err == nil {
			l = l.Bin(path)
			break
		}
	}

	browserURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(browserURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &RodFetcher{
		browser:     browser,
		scrollCount: scrollCount,
		scrollDelay: scrollDelay,
	}, nil
}

// Close closes the browser
func (rf *RodFetcher) Close() error {
	if rf.browser != nil {
		return rf.browser.Close()
	}
	return nil
}

// Fetch implements the Fetcher interface
func (rf *RodFetcher) Fetch(url string) (string, error) {
	page := rf.browser.MustPage()
	defer page.Close()

	log.Printf("Visiting %s\n", url)
	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate: %w", err)
	}

	page.WaitLoad()
	time.Sleep(5 * time.Second) // give the feed time to render

	// Dismiss the login popup if it appears; results render behind it.
	if closeBtn, err := page.Timeout(10 * time.Second).Element(`div[aria-label="Close"]`); err == nil {
		if err := closeBtn.Click("left", 1); err != nil {
			log.Printf("Warning: failed to close popup: %v\n", err)
		} else {
			log.Println("Closed popup")
		}
	}

	// Scroll to the bottom repeatedly so more listings load.
	log.Printf("Scrolling %d times with %v delay\n", rf.scrollCount, rf.scrollDelay)
	for i := 0; i < rf.scrollCount; i++ {
		if _, err := page.Eval(`() => window.scrollTo(0, document.body.scrollHeight)`); err != nil {
			log.Printf("Warning: scroll %d failed: %v\n", i+1, err)
			break
		}
		time.Sleep(rf.scrollDelay)
		log.Printf("Scroll %d/%d completed\n", i+1, rf.scrollCount)
	}

	if err := page.Timeout(10 * time.Second).WaitStable(500 * time.Millisecond); err != nil {
		log.Printf("Warning: page did not stabilize within timeout, continuing anyway: %v\n", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get HTML: %w", err)
	}

	return html, nil
}
