package reports

import (
	"encoding/csv"
	"os"

	"twstock"

	"github.com/pkg/errors"
)

// SaveCsv serializes the table to 'filename' as comma-separated values: one
// header row and one row per record, no index column. An existing file is
// overwritten. A table with no known columns produces an empty file.
func SaveCsv(table twstock.Table, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "creating %s", filename)
	}

	w := csv.NewWriter(f)
	if len(table.Columns) > 0 {
		if err := w.Write(table.Columns); err != nil {
			f.Close()
			return errors.Wrap(err, "writing header")
		}
	}
	for _, row := range table.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return errors.Wrap(err, "writing row")
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", filename)
	}
	return errors.Wrapf(f.Close(), "closing %s", filename)
}
