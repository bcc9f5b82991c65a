package main

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"go-konkurs-assistant/internal/browser"
	"go-konkurs-assistant/internal/config"

	"github.com/playwright-community/playwright-go"
)

func main() {
	fmt.Println("🌐 Testing Browser Manager...")

	cfg := config.Load()
	ctx := context.Background()

	//create playwright manager
	pm, err := browser.NewPlaywright(ctx, cfg.Headless)
	if err != nil {
		log.Fatalf("Failed to create Playwright: %v", err)
	}
	defer pm.Close()

	fmt.Println("✅ Playwright started")

	//cookies are optional here, we just want to see the login state
	cookies, err := browser.LoadCookies(filepath.Join(cfg.CookiesPath, "cookies-facebook.json"))
	if err != nil {
		log.Printf("⚠️ No cookies loaded: %v", err)
	} else {
		fmt.Printf("✅ Loaded %d cookies\n", len(cookies))
	}

	browserCtx, err := pm.NewContext(cookies)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer browserCtx.Close()

	fmt.Println("✅ Browser context created")

	page, err := browserCtx.NewPage()
	if err != nil {
		log.Fatalf("Failed to create page: %v", err)
	}

	fmt.Println("🔍 Navigating to Facebook...")
	if _, err := page.Goto("https://facebook.com"); err != nil {
		log.Fatalf("Failed to navigate: %v", err)
	}

	title, _ := page.Title()
	fmt.Printf("✅ Page title: %s\n", title)

	//take screenshot
	_, err = page.Screenshot(playwright.PageScreenshotOptions{
		Path: playwright.String("facebook-test.png"),
	})
	if err != nil {
		log.Printf("Failed to take screenshot: %v", err)
	} else {
		fmt.Println("📸 Screenshot saved: facebook-test.png")
	}
	fmt.Println("✨ Test complete!")
}
