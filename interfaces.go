package twstock

// Logger interface contains the methods needed to properly display log messages.
type Logger interface {
	Run(format string, v ...interface{})
	Ok()
	Nok()
	Printf(format string, v ...interface{})
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// DealStore is the interface that contains the methods needed to save and
// retrieve daily deal records to/from a local storage.
type DealStore interface {
	Save(stock string, records []Record) (int, error)
	Range(stock, startDate, endDate string) ([]Record, error)
}
