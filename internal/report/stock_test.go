package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/vietanh2810/franchise-api/internal/domain"
)

func TestWriteStock(t *testing.T) {
	var buf bytes.Buffer
	err := WriteStock(&buf, domain.Franchise{Name: "Lyon", City: "Lyon"}, []domain.StockFranchise{
		{Quantity: 4, Ingredient: &domain.Ingredient{Name: "Tomato", Unit: "kg", UnitPrice: 2.5}},
		{Quantity: 10, Ingredient: &domain.Ingredient{Name: "Flour", Unit: "kg", UnitPrice: 1}},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(stockSheet)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 6)
	assert.Equal(t, "Lyon", rows[0][0])
	assert.Equal(t, []string{"Ingredient", "Unit", "Quantity", "Unit price", "Value"}, rows[2])
	assert.Equal(t, "Tomato", rows[3][0])
	assert.Equal(t, "4", rows[3][2])
	assert.Equal(t, "10", rows[3][4])

	total, err := f.GetCellValue(stockSheet, "E7")
	require.NoError(t, err)
	assert.Equal(t, "20", total)
}

func TestReadStock_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStock(&buf, domain.Franchise{Name: "Lyon"}, []domain.StockFranchise{
		{Quantity: 4.5, Ingredient: &domain.Ingredient{Name: "Tomato", Unit: "kg", UnitPrice: 2}},
	}))

	rows, err := ReadStock(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Tomato", rows[0].Ingredient)
	assert.InDelta(t, 4.5, rows[0].Quantity, 1e-9)
}

func TestReadStock_InvalidQuantity(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Ingredient", "Unit", "Quantity"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Tomato", "kg", "lots"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	_, err := ReadStock(&buf)
	assert.ErrorIs(t, err, ErrInvalidSheet)
}

func TestReadStock_NotAWorkbook(t *testing.T) {
	_, err := ReadStock(bytes.NewBufferString("plain text"))
	assert.ErrorIs(t, err, ErrInvalidSheet)
}
