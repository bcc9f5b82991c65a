// Run the scraper
// Drop already-seen and non-contest posts
// Ask the AI for contest metadata per post
// Merge everything into result rows

package pipeline

import (
	"context"
	"errors"
	"log"
	"time"

	"go-konkurs-assistant/internal/ai"
	"go-konkurs-assistant/internal/config"
	"go-konkurs-assistant/internal/dedup"
	"go-konkurs-assistant/internal/filter"
	"go-konkurs-assistant/internal/models"
	"go-konkurs-assistant/internal/reporter"
	"go-konkurs-assistant/internal/scraper"

	"github.com/playwright-community/playwright-go"
)

type Pipeline struct {
	cfg      *config.Config
	client   ai.Client
	cache    *dedup.PostCache
	reporter *reporter.TelegramReporter
}

// New wires the pipeline. reporter may be nil (notifications disabled).
func New(cfg *config.Config, client ai.Client, cache *dedup.PostCache, rep *reporter.TelegramReporter) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		client:   client,
		cache:    cache,
		reporter: rep,
	}
}

// Run executes one scrape+extract cycle and returns the merged result rows.
func (p *Pipeline) Run(ctx context.Context, s scraper.Scraper, page playwright.Page) []models.ResultRow {
	log.Printf("▶️ Starting scraper: %s", s.Name())
	posts, err := s.Scrape(ctx, page)
	if err != nil {
		log.Printf("❌ Error running scraper %s: %v", s.Name(), err)
		posts = nil
	}
	log.Printf("📦 Scraper %s finished. Found %d posts.", s.Name(), len(posts))

	//dedup against previous runs
	var unseen []scraper.Post
	for _, post := range posts {
		if p.cache != nil && p.cache.IsSeen(post.Link) {
			continue
		}
		unseen = append(unseen, post)
	}
	log.Printf("🔍 Deduplication: %d total -> %d unseen posts", len(posts), len(unseen))

	var rows []models.ResultRow
	var processedLinks []string
	for _, post := range unseen {
		processedLinks = append(processedLinks, post.Link)

		//cheap prefilter before the paid AI call
		if !filter.LooksLikeContest(post.Content) {
			log.Printf("🚫 Skipped non-contest post: %s", post.Link)
			continue
		}

		row := p.analyze(ctx, post)
		rows = append(rows, row)
	}

	if p.cache != nil {
		p.cache.Add(processedLinks)
	}

	log.Printf("✅ Pipeline finished: %d rows.", len(rows))
	return rows
}

// analyze runs one extraction and maps its outcome onto a table row
func (p *Pipeline) analyze(ctx context.Context, post scraper.Post) models.ResultRow {
	info, err := p.client.AnalyzePost(ctx, post.Content)
	if err != nil {
		log.Printf("⚠️ Extraction failed for %s: %v", post.Link, err)
		if errors.Is(err, ai.ErrEmptyPost) {
			//nothing to extract, keep the row with blank columns
			return models.NewResultRow(post.Link, post.Content, models.ContestInfo{})
		}
		return models.NewErrorRow(post.Link, post.Content, markerFor(err))
	}

	if info.Deadline != nil {
		normalized := filter.NormalizeDeadline(*info.Deadline)
		info.Deadline = &normalized
	}

	row := models.NewResultRow(post.Link, post.Content, info)
	p.notify(row)
	return row
}

func (p *Pipeline) notify(row models.ResultRow) {
	if p.reporter == nil {
		return
	}
	if filter.IsExpired(row.Deadline) {
		return
	}
	if err := p.reporter.SendContest(row); err != nil {
		log.Printf("⚠️ Failed to send contest to Telegram: %v", err)
	}
	//1 second delay to avoid 429
	time.Sleep(1 * time.Second)
}

// markerFor maps an extraction failure class onto the display marker shown
// in the metadata columns.
func markerFor(err error) string {
	switch {
	case errors.Is(err, ai.ErrMissingAPIKey), errors.Is(err, ai.ErrConfiguration):
		return models.MarkerConfigError
	case errors.Is(err, ai.ErrMalformedResponse):
		return models.MarkerParseError
	default:
		return models.MarkerAPIError
	}
}
