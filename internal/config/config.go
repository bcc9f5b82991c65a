// Load envs from .env
// Load YAML config
// Apply env overrides and defaults

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	GeminiAPIKey string `yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	//Search defaults (overridable per request)
	SearchPhrase string `yaml:"search_phrase"`
	ScrollCount  int    `yaml:"scroll_count"`
	//Browser behavior
	LoginWaitSeconds int    `yaml:"login_wait_seconds"`
	PostSelector     string `yaml:"post_selector"`
	Headless         bool   `yaml:"headless"`
	//Paths
	OutputPath     string `yaml:"output_path"`
	CachePath      string `yaml:"cache_path"`
	CookiesPath    string `yaml:"cookies_path"`
	ReportTemplate string `yaml:"report_template"`
	//Optional Telegram notifications
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
}

func Load() *Config {
	_ = godotenv.Load()
	return LoadFrom("configs/config.yaml")
}

func LoadFrom(path string) *Config {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		cfg.GeminiAPIKey = key
	}

	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	//Set default values if not set
	if cfg.ScrollCount == 0 {
		cfg.ScrollCount = 5
	}

	if cfg.LoginWaitSeconds == 0 {
		cfg.LoginWaitSeconds = 20
	}

	if cfg.PostSelector == "" {
		cfg.PostSelector = "div[role='article']"
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = "data/konkursy_wyniki.xlsx"
	}

	if cfg.CachePath == "" {
		cfg.CachePath = ".cache"
	}

	if cfg.CookiesPath == "" {
		cfg.CookiesPath = ".cookies"
	}

	if cfg.ReportTemplate == "" {
		cfg.ReportTemplate = "templates/report.html"
	}

	return cfg
}
