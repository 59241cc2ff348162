package twstock

import (
	"time"
	"unicode"
)

// DateFormat is the wire format for all dates (YYYY-MM-DD).
const DateFormat = "2006-01-02"

var _timeNow = time.Now

// IsDate checks if date is a valid calendar date in format YYYY-MM-DD.
func IsDate(date string) bool {
	d, err := time.Parse(DateFormat, date)
	if err != nil {
		return false
	}
	// time.Parse normalizes dates like 2021-02-30; reject those
	return d.Format(DateFormat) == date
}

// IsStockID checks if 'id' looks like a TWSE security code: 2 to 10
// letters or digits, starting with a digit (e.g. 0050, 2330, 00632R).
func IsStockID(id string) bool {
	if len(id) < 2 || len(id) > 10 {
		return false
	}
	for i, r := range id {
		if i == 0 && !unicode.IsDigit(r) {
			return false
		}
		if !unicode.IsDigit(r) && !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Today returns the current calendar date in local time as YYYY-MM-DD.
func Today() string {
	return _timeNow().Format(DateFormat)
}
