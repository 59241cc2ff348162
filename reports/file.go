package reports

import (
	"path/filepath"
	"strings"

	"twstock"

	"github.com/pkg/errors"
)

// Output formats.
const (
	FormatCsv  = "csv"
	FormatXlsx = "xlsx"
)

// Save writes the table to 'filename' in the given format, fixing the file
// extension when it does not match. Returns the path actually written.
func Save(table twstock.Table, filename, format string) (string, error) {
	switch format {
	case "", FormatCsv:
		filename = fixExt(filename, ".csv")
		return filename, SaveCsv(table, filename)
	case FormatXlsx:
		filename = fixExt(filename, ".xlsx")
		return filename, SaveXlsx(table, filename)
	}
	return "", errors.Errorf("unknown format: %s", format)
}

func fixExt(filename, ext string) string {
	if strings.EqualFold(filepath.Ext(filename), ext) {
		return filename
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + ext
}
