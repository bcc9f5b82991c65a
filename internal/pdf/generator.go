package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"go-konkurs-assistant/internal/models"

	"github.com/playwright-community/playwright-go"
)

// Generator renders the result table into a printable PDF report
type Generator struct {
	templatePath string
}

// NewGenerator creates a new PDF generator with the given HTML template path
func NewGenerator(templatePath string) *Generator {
	return &Generator{
		templatePath: templatePath,
	}
}

type reportData struct {
	SearchPhrase string
	Rows         []models.ResultRow
}

// Generate parses the rows through the HTML template and uses Playwright to
// render the page as a PDF byte array.
func (g *Generator) Generate(searchPhrase string, rows []models.ResultRow) ([]byte, error) {
	tmpl, err := template.ParseFiles(g.templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, reportData{SearchPhrase: searchPhrase, Rows: rows}); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	//write the rendered html to a temp file so chromium can open it
	tmpFile, err := os.CreateTemp("", "konkurs-report-*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp html: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(buf.Bytes()); err != nil {
		tmpFile.Close()
		return nil, fmt.Errorf("failed to write temp html: %w", err)
	}
	tmpFile.Close()

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create page: %w", err)
	}

	fileURL := "file://" + filepath.ToSlash(tmpFile.Name())
	if _, err := page.Goto(fileURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("could not open rendered report: %w", err)
	}

	pdfBytes, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not render pdf: %w", err)
	}

	return pdfBytes, nil
}

// GenerateToFile renders the report and writes it next to the spreadsheet
func (g *Generator) GenerateToFile(searchPhrase string, rows []models.ResultRow, outputPath string) error {
	pdfBytes, err := g.Generate(searchPhrase, rows)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	return os.WriteFile(outputPath, pdfBytes, 0644)
}
