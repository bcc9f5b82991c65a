package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"go-konkurs-assistant/internal/ai"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("GEMINI_API_KEY environment variable not set. Please set it to test the AI.")
		return
	}

	client := ai.NewGeminiClient(apiKey)

	samples := []string{
		"Wygraj super nagrody! Zadanie: polub post. Zgłoszenia w komentarzu. Czas do 20.03.2025.",
		"Konkurs! Do wygrania książka. Zadanie: odpowiedz na pytanie.",
		"",
	}

	for i, post := range samples {
		fmt.Printf("\n--- Sample %d ---\n", i+1)
		info, err := client.AnalyzePost(context.Background(), post)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		printField("Zadanie", info.Task)
		printField("Miejsce", info.Venue)
		printField("Termin", info.Deadline)
	}
}

func printField(label string, value *string) {
	if value == nil {
		fmt.Printf("%s: (brak)\n", label)
		return
	}
	fmt.Printf("%s: %s\n", label, *value)
}
