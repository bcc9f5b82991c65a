package dedup

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type seenEntry struct {
	Link      string `json:"link"`
	Timestamp int64  `json:"timestamp"`
}

// PostCache remembers which post permalinks were already processed so
// repeated runs do not re-analyze (and re-announce) the same contests.
type PostCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewPostCache creates or loads a post cache under cacheDir
func NewPostCache(cacheDir string) *PostCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	cache := &PostCache{
		filePath: filepath.Join(cacheDir, "seen_posts.json"),
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// IsSeen checks if a permalink has already been processed
func (pc *PostCache) IsSeen(link string) bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	_, exists := pc.seen[link]
	return exists
}

func (pc *PostCache) Add(links []string) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, link := range links {
		if _, exists := pc.seen[link]; !exists {
			pc.seen[link] = now
			changed = true
		}
	}

	if changed {
		pc.save()
	}
}

// load reads the cache from disk, dropping entries older than 30 days
func (pc *PostCache) load() {
	data, err := os.ReadFile(pc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_posts.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_posts.json: %v", err)
		return
	}

	cutoff := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			pc.seen[e.Link] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen posts (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk
func (pc *PostCache) save() {
	entries := make([]seenEntry, 0, len(pc.seen))
	for link, ts := range pc.seen {
		entries = append(entries, seenEntry{Link: link, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen posts: %v", err)
		return
	}
	if err := os.WriteFile(pc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_posts.json: %v", err)
	}
}
