package pipeline

import (
	"fmt"
	"sync"

	"go-konkurs-assistant/internal/models"
)

// ResultTable is the in-memory, editable result set behind the review UI.
// Mutex-guarded because the HTTP server edits it from concurrent requests.
type ResultTable struct {
	mu   sync.RWMutex
	rows []models.ResultRow
}

func NewResultTable() *ResultTable {
	return &ResultTable{}
}

// Replace swaps in a fresh result set after a pipeline run
func (t *ResultTable) Replace(rows []models.ResultRow) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append([]models.ResultRow(nil), rows...)
}

// Rows returns a copy so callers can't mutate the table behind the lock
func (t *ResultTable) Rows() []models.ResultRow {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]models.ResultRow(nil), t.rows...)
}

func (t *ResultTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

func (t *ResultTable) AddRow(row models.ResultRow) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row)
}

func (t *ResultTable) UpdateRow(index int, row models.ResultRow) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("row index %d out of range (0..%d)", index, len(t.rows)-1)
	}
	t.rows[index] = row
	return nil
}

func (t *ResultTable) DeleteRow(index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("row index %d out of range (0..%d)", index, len(t.rows)-1)
	}
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	return nil
}
