// HTTP API for the review/export flow:
// run a search, inspect and edit the result table, export to xlsx/pdf

package server

import (
	"context"
	"net/http"
	"strconv"
	"sync"

	"go-konkurs-assistant/internal/config"
	"go-konkurs-assistant/internal/export"
	"go-konkurs-assistant/internal/models"
	"go-konkurs-assistant/internal/pdf"
	"go-konkurs-assistant/internal/pipeline"

	"github.com/gin-gonic/gin"
)

// RunFunc executes one scrape+extract cycle. Injected so tests can fake the
// whole browser/AI stack behind it.
type RunFunc func(ctx context.Context, apiKey, searchPhrase string, scrollCount int) ([]models.ResultRow, error)

type Server struct {
	cfg   *config.Config
	table *pipeline.ResultTable
	run   RunFunc

	mu         sync.Mutex
	lastPhrase string
}

func New(cfg *config.Config, run RunFunc) *Server {
	return &Server{
		cfg:   cfg,
		table: pipeline.NewResultTable(),
		run:   run,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Asystent Konkursów API is running!",
			"status":  "healthy",
		})
	})

	api := r.Group("/api")
	api.POST("/search", s.handleSearch)
	api.GET("/results", s.handleListResults)
	api.POST("/results", s.handleAddRow)
	api.PUT("/results/:index", s.handleUpdateRow)
	api.DELETE("/results/:index", s.handleDeleteRow)
	api.POST("/export", s.handleExport)
	api.POST("/report", s.handleReport)

	return r
}

type searchRequest struct {
	APIKey       string `json:"api_key"`
	SearchPhrase string `json:"search_phrase"`
	ScrollCount  int    `json:"scroll_count"`
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apiKey := req.APIKey
	if apiKey == "" {
		apiKey = s.cfg.GeminiAPIKey
	}
	if apiKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Proszę wprowadzić klucz API Gemini"})
		return
	}

	if req.SearchPhrase == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Proszę wpisać frazę do wyszukania"})
		return
	}

	scrollCount := req.ScrollCount
	if scrollCount <= 0 {
		scrollCount = s.cfg.ScrollCount
	}

	rows, err := s.run(c.Request.Context(), apiKey, req.SearchPhrase, scrollCount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.table.Replace(rows)
	s.mu.Lock()
	s.lastPhrase = req.SearchPhrase
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"count": len(rows), "results": rows})
}

func (s *Server) handleListResults(c *gin.Context) {
	rows := s.table.Rows()
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "results": rows})
}

func (s *Server) handleAddRow(c *gin.Context) {
	var row models.ResultRow
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.table.AddRow(row)
	c.JSON(http.StatusOK, gin.H{"count": s.table.Len()})
}

func (s *Server) rowIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid row index"})
		return 0, false
	}
	return index, true
}

func (s *Server) handleUpdateRow(c *gin.Context) {
	index, ok := s.rowIndex(c)
	if !ok {
		return
	}

	var row models.ResultRow
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.table.UpdateRow(index, row); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": index})
}

func (s *Server) handleDeleteRow(c *gin.Context) {
	index, ok := s.rowIndex(c)
	if !ok {
		return
	}

	if err := s.table.DeleteRow(index); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": index})
}

type exportRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleExport(c *gin.Context) {
	var req exportRequest
	//body is optional, default path comes from config
	c.ShouldBindJSON(&req)

	path := req.Path
	if path == "" {
		path = s.cfg.OutputPath
	}

	rows := s.table.Rows()
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brak wyników do zapisania"})
		return
	}

	if err := export.SaveResults(path, rows); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": path, "count": len(rows)})
}

func (s *Server) handleReport(c *gin.Context) {
	var req exportRequest
	c.ShouldBindJSON(&req)

	path := req.Path
	if path == "" {
		path = "data/konkursy_raport.pdf"
	}

	rows := s.table.Rows()
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "brak wyników do zapisania"})
		return
	}

	s.mu.Lock()
	phrase := s.lastPhrase
	s.mu.Unlock()

	gen := pdf.NewGenerator(s.cfg.ReportTemplate)
	if err := gen.GenerateToFile(phrase, rows, path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": path, "count": len(rows)})
}
