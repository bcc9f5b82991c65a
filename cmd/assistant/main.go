package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-konkurs-assistant/internal/config"
	"go-konkurs-assistant/internal/export"
	"go-konkurs-assistant/internal/pdf"
	"go-konkurs-assistant/internal/pipeline"
)

func main() {
	//load config
	cfg := config.Load()

	phrase := flag.String("phrase", cfg.SearchPhrase, "search phrase, e.g. 'konkurs'")
	scrolls := flag.Int("scrolls", cfg.ScrollCount, "how many times to scroll the results page")
	output := flag.String("output", cfg.OutputPath, "path of the exported xlsx file")
	report := flag.String("report", "", "optional path of a pdf report")
	flag.Parse()

	if *phrase == "" {
		log.Fatal("❌ Search phrase is required (-phrase or search_phrase in config.yaml)")
	}
	if cfg.GeminiAPIKey == "" {
		log.Fatal("❌ GEMINI_API_KEY is required")
	}

	log.Printf("🔧 Config loaded. Phrase: %q, scrolls: %d", *phrase, *scrolls)

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting Asystent Konkursów...")

	rows, err := pipeline.RunSearch(ctx, cfg, cfg.GeminiAPIKey, *phrase, *scrolls)
	if err != nil {
		log.Fatalf("❌ Search failed: %v", err)
	}

	if len(rows) == 0 {
		log.Println("ℹ️ No contests found, nothing to save.")
		return
	}

	if err := export.SaveResults(*output, rows); err != nil {
		log.Fatalf("❌ Failed to save results: %v", err)
	}
	log.Printf("📁 Results saved to %s", *output)

	if *report != "" {
		gen := pdf.NewGenerator(cfg.ReportTemplate)
		if err := gen.GenerateToFile(*phrase, rows, *report); err != nil {
			log.Printf("⚠️ Failed to generate pdf report: %v", err)
		} else {
			log.Printf("📄 Report saved to %s", *report)
		}
	}

	log.Println("🏁 Execution finished.")
}
