package twstock

import "errors"

var (
	ErrInvalidStock = errors.New("invalid stock id")
	ErrInvalidDate  = errors.New("invalid date format")
	ErrInvalidRange = errors.New("start date after end date")
	ErrNoData       = errors.New("no data")
)
