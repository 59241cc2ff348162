package reports

import (
	"strconv"

	"twstock"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/pkg/errors"
)

const sheetName = "Data"

// SaveXlsx serializes the table to an Excel file with the same layout as
// the CSV output: one bold header row, one row per record.
func SaveXlsx(table twstock.Table, filename string) error {
	xlsx := excelize.NewFile()
	index := xlsx.NewSheet(sheetName)

	if len(table.Columns) > 0 {
		xlsx.SetSheetRow(sheetName, "A1", &table.Columns)

		style, err := xlsx.NewStyle(`{"font":{"bold":true},"alignment":{"horizontal":"center"}}`)
		if err == nil {
			xlsx.SetCellStyle(sheetName, "A1", axis(len(table.Columns), 1), style)
		}
	}

	for i, row := range table.Rows {
		r := row
		xlsx.SetSheetRow(sheetName, axis(1, i+2), &r)
	}

	xlsx.DeleteSheet("Sheet1")
	xlsx.SetActiveSheet(index)

	return errors.Wrapf(xlsx.SaveAs(filename), "saving %s", filename)
}

// axis converts 1-based column/row numbers into a cell reference (1,1 => A1).
func axis(col, row int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name + strconv.Itoa(row)
}
