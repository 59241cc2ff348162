package reports

import (
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"testing"

	"twstock"

	"github.com/stretchr/testify/assert"
)

func TestSaveCsv(t *testing.T) {
	var rec twstock.Record
	err := json.Unmarshal([]byte(`{"date":"2021-09-13","close":100}`), &rec)
	assert.Nil(t, err)

	filename := filepath.Join(t.TempDir(), "stock_data.csv")
	err = SaveCsv(twstock.BuildTable([]twstock.Record{rec}), filename)
	assert.Nil(t, err)

	got, err := ioutil.ReadFile(filename)
	assert.Nil(t, err)
	assert.Equal(t, "date,close\n2021-09-13,100\n", string(got))
}

func TestSaveCsv_RowCount(t *testing.T) {
	table := twstock.Table{
		Columns: []string{"date", "close"},
		Rows: [][]string{
			{"2021-09-13", "100"},
			{"2021-09-14", "101.5"},
			{"2021-09-15", "99"},
		},
	}

	filename := filepath.Join(t.TempDir(), "out.csv")
	assert.Nil(t, SaveCsv(table, filename))

	got, err := ioutil.ReadFile(filename)
	assert.Nil(t, err)

	// one header line plus one line per record
	lines := 0
	for _, b := range got {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, len(table.Rows)+1, lines)
}

func TestSaveCsv_Idempotent(t *testing.T) {
	table := twstock.Table{
		Columns: []string{"date", "close"},
		Rows:    [][]string{{"2021-09-13", "100"}},
	}

	filename := filepath.Join(t.TempDir(), "out.csv")

	assert.Nil(t, SaveCsv(table, filename))
	first, err := ioutil.ReadFile(filename)
	assert.Nil(t, err)

	assert.Nil(t, SaveCsv(table, filename))
	second, err := ioutil.ReadFile(filename)
	assert.Nil(t, err)

	assert.Equal(t, first, second)
}

func TestSaveCsv_EmptyTable(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "empty.csv")

	// no records at all: nothing is known about the columns
	assert.Nil(t, SaveCsv(twstock.BuildTable(nil), filename))
	got, err := ioutil.ReadFile(filename)
	assert.Nil(t, err)
	assert.Len(t, got, 0)

	// known columns, no rows: header only
	table := twstock.Table{Columns: []string{"date", "close"}}
	assert.Nil(t, SaveCsv(table, filename))
	got, err = ioutil.ReadFile(filename)
	assert.Nil(t, err)
	assert.Equal(t, "date,close\n", string(got))
}

func TestSaveCsv_BadPath(t *testing.T) {
	err := SaveCsv(twstock.Table{}, filepath.Join(t.TempDir(), "no", "such", "dir.csv"))
	assert.NotNil(t, err)
}
