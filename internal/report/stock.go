// Package report reads and writes franchise stock spreadsheets.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

const stockSheet = "Stock"

var ErrInvalidSheet = errors.New("invalid stock spreadsheet")

var stockHeader = []any{"Ingredient", "Unit", "Quantity", "Unit price", "Value"}

// StockRow is one line of an imported spreadsheet.
type StockRow struct {
	Line       int
	Ingredient string
	Quantity   float64
}

func WriteStock(w io.Writer, franchise domain.Franchise, stocks []domain.StockFranchise) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), stockSheet); err != nil {
		return fmt.Errorf("f.SetSheetName -> %w", err)
	}

	if err := f.SetSheetRow(stockSheet, "A1", &[]any{franchise.Name, franchise.City}); err != nil {
		return fmt.Errorf("f.SetSheetRow -> %w", err)
	}
	if err := f.SetSheetRow(stockSheet, "A3", &stockHeader); err != nil {
		return fmt.Errorf("f.SetSheetRow -> %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("f.NewStyle -> %w", err)
	}
	if err = f.SetCellStyle(stockSheet, "A1", "A1", bold); err != nil {
		return fmt.Errorf("f.SetCellStyle -> %w", err)
	}
	if err = f.SetCellStyle(stockSheet, "A3", "E3", bold); err != nil {
		return fmt.Errorf("f.SetCellStyle -> %w", err)
	}

	var total float64
	for i, stock := range stocks {
		var name, unit string
		var price float64
		if stock.Ingredient != nil {
			name, unit, price = stock.Ingredient.Name, stock.Ingredient.Unit, stock.Ingredient.UnitPrice
		}
		value := stock.Quantity * price
		total += value

		cell, err := excelize.CoordinatesToCellName(1, i+4)
		if err != nil {
			return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
		}
		if err = f.SetSheetRow(stockSheet, cell, &[]any{name, unit, stock.Quantity, price, value}); err != nil {
			return fmt.Errorf("f.SetSheetRow -> %w", err)
		}
	}

	totalCell, err := excelize.CoordinatesToCellName(4, len(stocks)+5)
	if err != nil {
		return fmt.Errorf("excelize.CoordinatesToCellName -> %w", err)
	}
	if err = f.SetSheetRow(stockSheet, totalCell, &[]any{"Total", total}); err != nil {
		return fmt.Errorf("f.SetSheetRow -> %w", err)
	}

	if err = f.SetColWidth(stockSheet, "A", "A", 32); err != nil {
		return fmt.Errorf("f.SetColWidth -> %w", err)
	}

	if err = f.Write(w); err != nil {
		return fmt.Errorf("f.Write -> %w", err)
	}

	return nil
}

// ReadStock parses the first sheet of an xlsx file. Column A holds the
// ingredient name and column C the quantity, the layout WriteStock produces.
// Rows before the header line and blank rows are skipped.
func ReadStock(r io.Reader) ([]StockRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: no sheet", ErrInvalidSheet)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSheet, err)
	}

	start := 0
	for i, row := range rows {
		if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "ingredient") {
			start = i + 1
			break
		}
	}

	var out []StockRow
	for i := start; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" || strings.EqualFold(strings.TrimSpace(row[0]), "total") {
			continue
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: line %d has no quantity", ErrInvalidSheet, i+1)
		}

		raw := strings.ReplaceAll(strings.TrimSpace(row[2]), ",", ".")
		quantity, err := strconv.ParseFloat(raw, 64)
		if err != nil || quantity < 0 {
			return nil, fmt.Errorf("%w: line %d has invalid quantity %q", ErrInvalidSheet, i+1, row[2])
		}

		out = append(out, StockRow{Line: i + 1, Ingredient: strings.TrimSpace(row[0]), Quantity: quantity})
	}

	return out, nil
}
