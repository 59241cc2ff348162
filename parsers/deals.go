package parsers

import (
	"database/sql"
	"encoding/json"

	"twstock"

	"github.com/pkg/errors"
)

// DealSqlite stores daily deal records on a sqlite database, keyed by
// (stock, date). Each record is kept as one JSON blob, preserving the field
// order the server sent, so no schema is imposed on the remote data.
type DealSqlite struct {
	db *sql.DB
}

// NewDealSqlite creates the deal_info table if needed and returns a new
// instance of *DealSqlite.
func NewDealSqlite(db *sql.DB) (*DealSqlite, error) {
	if db == nil {
		return nil, errors.New("invalid db")
	}
	if err := createTable(db); err != nil {
		return nil, err
	}
	return &DealSqlite{db: db}, nil
}

func createTable(db *sql.DB) error {
	sqlStmt := `CREATE TABLE IF NOT EXISTS deal_info
	(
		"STOCK" varchar(10) NOT NULL,
		"DATE" varchar(10) NOT NULL,
		"FIELDS" text NOT NULL,
		PRIMARY KEY ("STOCK", "DATE")
	);`

	_, err := db.Exec(sqlStmt)
	return errors.Wrap(err, "creating table deal_info")
}

// Save stores the records for 'stock'. Records already stored for the same
// date are replaced. Records without a valid date field are skipped, as the
// date is the cache key.
func (s DealSqlite) Save(stock string, records []twstock.Record) (int, error) {
	insert := `INSERT OR REPLACE INTO deal_info (STOCK, DATE, FIELDS) VALUES (?,?,?);`
	stmt, err := s.db.Prepare(insert)
	if err != nil {
		return 0, errors.Wrap(err, "insert on deal_info")
	}
	defer stmt.Close()

	var n int
	for _, rec := range records {
		date, ok := rec.Get("date")
		if !ok || !twstock.IsDate(date) {
			continue
		}
		blob, err := json.Marshal(rec)
		if err != nil {
			return n, errors.Wrap(err, "encoding deal record")
		}
		if _, err := stmt.Exec(stock, date, string(blob)); err != nil {
			return n, errors.Wrap(err, "inserting deal record")
		}
		n++
	}

	return n, nil
}

// Range returns the stored records for 'stock' between startDate and
// endDate (inclusive), ordered by date.
func (s DealSqlite) Range(stock, startDate, endDate string) ([]twstock.Record, error) {
	query := `SELECT FIELDS FROM deal_info
		WHERE STOCK = ? AND DATE BETWEEN ? AND ? ORDER BY DATE;`
	rows, err := s.db.Query(query, stock, startDate, endDate)
	if err != nil {
		return nil, errors.Wrap(err, "querying deal_info")
	}
	defer rows.Close()

	var records []twstock.Record
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, errors.Wrap(err, "reading deal_info row")
		}
		var rec twstock.Record
		if err := json.Unmarshal([]byte(blob), &rec); err != nil {
			return nil, errors.Wrap(err, "decoding stored deal record")
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}
