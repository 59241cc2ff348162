package twstock

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Query holds the validated parameters of one data-fetch invocation.
// Built once by NewQuery and never mutated afterwards.
type Query struct {
	StockID   string
	StartDate string
	EndDate   string
}

// NewQuery validates the inputs and assembles a Query. An empty endDate
// defaults to today's local calendar date. Dates must be YYYY-MM-DD and
// startDate must not be after endDate.
func NewQuery(stockID, startDate, endDate string) (Query, error) {
	if !IsStockID(strings.TrimSpace(stockID)) {
		return Query{}, errors.Wrap(ErrInvalidStock, stockID)
	}
	if !IsDate(startDate) {
		return Query{}, errors.Wrap(ErrInvalidDate, startDate)
	}
	if endDate == "" {
		endDate = Today()
	}
	if !IsDate(endDate) {
		return Query{}, errors.Wrap(ErrInvalidDate, endDate)
	}
	// ISO dates compare lexically
	if startDate > endDate {
		return Query{}, errors.Wrapf(ErrInvalidRange, "%s > %s", startDate, endDate)
	}

	return Query{
		StockID:   strings.TrimSpace(stockID),
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

// Field is one named value of a Record.
type Field struct {
	Name  string
	Value string
}

// Record is one row of remote API data. No schema is enforced at this layer:
// fields keep the name and order the server sent them in, and values keep
// their literal form (numbers are not reformatted).
type Record []Field

// Get returns the value of the field named 'name'.
func (r Record) Get(name string) (string, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// UnmarshalJSON decodes a JSON object into an ordered field list.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return errors.Wrap(err, "decoding record")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Errorf("record is not a JSON object: %s", data)
	}

	var rec Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.Wrap(err, "decoding record key")
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return errors.Wrapf(err, "decoding record value for %q", key)
		}
		rec = append(rec, Field{Name: key, Value: rawValue(raw)})
	}

	*r = rec
	return nil
}

// MarshalJSON re-emits the record as a JSON object, fields in order. All
// values are written as strings; a round trip keeps the tabular output
// identical.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// rawValue converts a raw JSON value to its cell representation: strings are
// unquoted, null becomes empty, everything else (numbers, booleans, nested
// values) keeps its compact JSON text.
func rawValue(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return buf.String()
	}
	return string(raw)
}

// Table is the in-memory tabular form of a sequence of Records, the direct
// input to CSV/XLSX serialization.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table has no data rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// BuildTable materializes records into rows and columns. Columns are the
// union of all field names in first-seen order; fields missing from a record
// render as empty cells.
func BuildTable(records []Record) Table {
	var t Table
	seen := make(map[string]int)

	for _, rec := range records {
		for _, f := range rec {
			if _, ok := seen[f.Name]; !ok {
				seen[f.Name] = len(t.Columns)
				t.Columns = append(t.Columns, f.Name)
			}
		}
	}

	for _, rec := range records {
		row := make([]string, len(t.Columns))
		for _, f := range rec {
			row[seen[f.Name]] = f.Value
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// StockInfo is one entry of the TWSE security catalog.
type StockInfo struct {
	ID       string `json:"stock_id" yaml:"id"`
	Name     string `json:"stock_name" yaml:"name"`
	Type     string `json:"type" yaml:"type"`
	Industry string `json:"industry_category" yaml:"industry"`
}
