// Define an interface for all scrapers
// Ensure consistency

package scraper

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

// Post is one scraped social media post: its visible text and permalink.
type Post struct {
	Content string `json:"content"`
	Link    string `json:"link"`
}

//Scraper defines the interface that all platform scrapers must implement
type Scraper interface {
	//Scrape posts from the platform. Session-level failures are logged and
	//yield an empty result rather than an error so one bad session never
	//aborts the whole run.
	Scrape(ctx context.Context, page playwright.Page) ([]Post, error)

	//Name is the platform name (Facebook, ...)
	Name() string
}
