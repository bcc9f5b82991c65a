package pipeline

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"go-konkurs-assistant/internal/ai"
	"go-konkurs-assistant/internal/browser"
	"go-konkurs-assistant/internal/config"
	"go-konkurs-assistant/internal/dedup"
	"go-konkurs-assistant/internal/models"
	"go-konkurs-assistant/internal/reporter"
	"go-konkurs-assistant/internal/scraper/facebook"

	"github.com/playwright-community/playwright-go"
)

// RunSearch launches a browser session and runs the full scrape+extract
// cycle for one search phrase. This is the entrypoint both the CLI and the
// HTTP server go through.
func RunSearch(ctx context.Context, cfg *config.Config, apiKey, searchPhrase string, scrollCount int) ([]models.ResultRow, error) {
	pwManager, err := browser.NewPlaywright(ctx, cfg.Headless)
	if err != nil {
		return nil, fmt.Errorf("failed to init playwright: %w", err)
	}
	defer pwManager.Close()

	//cookies are optional, manual login covers a missing file
	var cookies []playwright.OptionalCookie
	cookieFile := filepath.Join(cfg.CookiesPath, "cookies-facebook.json")
	if loaded, err := browser.LoadCookies(cookieFile); err != nil {
		log.Printf("⚠️ Could not load facebook cookies: %v. Continuing.", err)
	} else {
		log.Printf("🍪 Loaded facebook cookies (%d)", len(loaded))
		cookies = loaded
	}

	browserCtx, err := pwManager.NewContext(cookies)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	log.Println("✅ Browser initialized successfully!")

	rep, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Printf("⚠️ Telegram notifications disabled: %v", err)
		rep = nil
	}

	p := New(cfg, ai.NewGeminiClient(apiKey), dedup.NewPostCache(cfg.CachePath), rep)
	rows := p.Run(ctx, facebook.New(cfg, searchPhrase, scrollCount), page)

	return rows, nil
}
