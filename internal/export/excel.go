// Write the result table to an .xlsx file
// Read a previously exported file back into rows

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go-konkurs-assistant/internal/models"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Konkursy"

// Headers of the exported sheet, in column order. Kept in Polish to match
// what the reviewer sees in the table.
var Headers = []string{"Link", "Treść Posta", "Zadanie Konkursowe", "Miejsce Zgłoszenia", "Termin Zakończenia"}

// SaveResults writes the rows to an xlsx file, creating parent directories
// as needed.
func SaveResults(path string, rows []models.ResultRow) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetName)

	//bold header row
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return err
		}
	}

	//readable column widths
	f.SetColWidth(sheetName, "A", "A", 40)
	f.SetColWidth(sheetName, "B", "B", 60)
	f.SetColWidth(sheetName, "C", "E", 30)

	for i, row := range rows {
		values := []string{row.Link, row.Content, row.Task, row.Venue, row.Deadline}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// LoadResults reads an exported xlsx file back into result rows.
func LoadResults(path string) ([]models.ResultRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheetName, err)
	}

	var rows []models.ResultRow
	for i, cells := range raw {
		//skip header
		if i == 0 {
			continue
		}
		//GetRows drops trailing empty cells, pad back to full width
		for len(cells) < len(Headers) {
			cells = append(cells, "")
		}
		rows = append(rows, models.ResultRow{
			Link:     cells[0],
			Content:  cells[1],
			Task:     cells[2],
			Venue:    cells[3],
			Deadline: cells[4],
		})
	}

	return rows, nil
}
