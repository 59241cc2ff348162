package reports

import (
	"path/filepath"
	"testing"

	"twstock"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
)

func TestSaveXlsx(t *testing.T) {
	table := twstock.Table{
		Columns: []string{"date", "close"},
		Rows: [][]string{
			{"2021-09-13", "100"},
			{"2021-09-14", "101.5"},
		},
	}

	filename := filepath.Join(t.TempDir(), "stock_data.xlsx")
	err := SaveXlsx(table, filename)
	assert.Nil(t, err)

	x, err := excelize.OpenFile(filename)
	assert.Nil(t, err)
	assert.Equal(t, "date", x.GetCellValue(sheetName, "A1"))
	assert.Equal(t, "close", x.GetCellValue(sheetName, "B1"))
	assert.Equal(t, "2021-09-13", x.GetCellValue(sheetName, "A2"))
	assert.Equal(t, "101.5", x.GetCellValue(sheetName, "B3"))
}

func TestAxis(t *testing.T) {
	tests := []struct {
		col, row int
		want     string
	}{
		{1, 1, "A1"},
		{2, 10, "B10"},
		{26, 2, "Z2"},
		{27, 3, "AA3"},
	}
	for _, tt := range tests {
		if got := axis(tt.col, tt.row); got != tt.want {
			t.Errorf("axis(%d, %d) = %s, want %s", tt.col, tt.row, got, tt.want)
		}
	}
}
