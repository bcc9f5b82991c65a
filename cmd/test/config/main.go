package main

import (
	"fmt"

	"go-konkurs-assistant/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg := config.Load()
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   Gemini API key set: %t\n", cfg.GeminiAPIKey != "")
	fmt.Printf("   Search phrase: %q\n", cfg.SearchPhrase)
	fmt.Printf("   Scroll count: %d\n", cfg.ScrollCount)
	fmt.Printf("   Login wait: %ds\n", cfg.LoginWaitSeconds)
	fmt.Printf("   Post selector: %s\n", cfg.PostSelector)
	fmt.Printf("   Output path: %s\n", cfg.OutputPath)
	fmt.Printf("   Cookies path: %s\n", cfg.CookiesPath)
	fmt.Printf("   Telegram configured: %t\n", cfg.TelegramToken != "" && cfg.TelegramChatID != 0)
}
