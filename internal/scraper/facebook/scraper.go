// Navigate to Facebook and wait for manual login
// Open post search for the configured phrase
// Scroll to load more results
// Extract text + permalink from every post element

package facebook

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"go-konkurs-assistant/internal/browser"
	"go-konkurs-assistant/internal/config"
	"go-konkurs-assistant/internal/scraper"
	"go-konkurs-assistant/utils"

	"github.com/playwright-community/playwright-go"
)

const facebookHome = "https://facebook.com"

type FacebookScraper struct {
	cfg          *config.Config
	searchPhrase string
	scrollCount  int
}

func New(cfg *config.Config, searchPhrase string, scrollCount int) *FacebookScraper {
	return &FacebookScraper{
		cfg:          cfg,
		searchPhrase: searchPhrase,
		scrollCount:  scrollCount,
	}
}

func (s *FacebookScraper) Name() string {
	return "Facebook"
}

func (s *FacebookScraper) Scrape(ctx context.Context, page playwright.Page) ([]scraper.Post, error) {
	var posts []scraper.Post
	log.Printf("🔎 Searching Facebook posts for %q (scrolls: %d)...", s.searchPhrase, s.scrollCount)

	screenshotDebugger := utils.NewScreenShotDebugger()

	//warm up & manual login window
	log.Println("🏠 Navigating to Facebook...")
	if _, err := page.Goto(facebookHome, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		log.Printf("❌ Failed to load Facebook: %v", err)
		return nil, nil
	}

	log.Printf("⏳ Pausing %ds for manual login...", s.cfg.LoginWaitSeconds)
	time.Sleep(time.Duration(s.cfg.LoginWaitSeconds) * time.Second)

	searchURL := buildSearchURL(s.searchPhrase)
	log.Printf("🌐 Visiting post search: %s", searchURL)
	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(30000),
	}); err != nil {
		log.Printf("❌ Failed to load search results: %v", err)
		screenshotDebugger.CaptureAndLog(page, "facebook-search-failed", "🚨 Facebook: search page did not load")
		return nil, nil
	}

	browser.RandomDelay(1000, 2000)
	browser.MouseJiggle(page)

	//scroll to load more posts, 2s settle wait per scroll
	log.Printf("📜 Scrolling %d times...", s.scrollCount)
	for i := 0; i < s.scrollCount; i++ {
		if err := browser.ScrollToBottom(page); err != nil {
			log.Printf("⚠️ Scroll %d/%d failed: %v", i+1, s.scrollCount, err)
		}
		time.Sleep(2 * time.Second)
	}

	//collect post elements
	articles, err := page.Locator(s.cfg.PostSelector).All()
	if err != nil {
		log.Printf("❌ Error finding post elements: %v", err)
		screenshotDebugger.CaptureAndLog(page, "facebook-no-articles", "🚨 Facebook: post query failed")
		return nil, nil
	}
	log.Printf("📦 Found %d potential post elements.", len(articles))

	for i, article := range articles {
		post, err := extractPost(article)
		if err != nil {
			log.Printf("⚠️ Skipping post element %d: %v", i+1, err)
			continue
		}
		posts = append(posts, post)
	}

	log.Printf("✅ Extracted %d/%d posts.", len(posts), len(articles))
	return posts, nil
}

func buildSearchURL(phrase string) string {
	return fmt.Sprintf("https://www.facebook.com/search/posts/?q=%s", url.QueryEscape(phrase))
}

// extractPost pulls the visible text and the first link out of one post
// element. Any failure here is the caller's signal to skip the element.
func extractPost(article playwright.Locator) (scraper.Post, error) {
	content, err := article.InnerText(playwright.LocatorInnerTextOptions{
		Timeout: playwright.Float(2000),
	})
	if err != nil {
		return scraper.Post{}, fmt.Errorf("could not read post text: %w", err)
	}

	href, err := article.Locator("a").First().GetAttribute("href", playwright.LocatorGetAttributeOptions{
		Timeout: playwright.Float(2000),
	})
	if err != nil {
		return scraper.Post{}, fmt.Errorf("could not read post link: %w", err)
	}

	return newPost(content, href)
}

// newPost validates and normalizes a scraped content/link pair
func newPost(content, href string) (scraper.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return scraper.Post{}, fmt.Errorf("post has no text content")
	}

	href = strings.TrimSpace(href)
	if href == "" {
		return scraper.Post{}, fmt.Errorf("post has no link")
	}
	if !strings.HasPrefix(href, "http") {
		href = "https://www.facebook.com" + href
	}

	return scraper.Post{Content: content, Link: href}, nil
}
