package fetch

import (
	"net/url"

	"twstock"

	"github.com/pkg/errors"
)

// DefaultBaseURL is the FinMind data API endpoint.
const DefaultBaseURL = "https://api.finmindtrade.com/api/v4/data"

// FinMind dataset with the TWSE daily deal info (股價日成交資訊).
const dealDataset = "TaiwanStockPrice"

// StockFetch downloads TWSE stock data from the FinMind API.
type StockFetch struct {
	http    *HTTPFetch
	baseURL string
	token   string // FinMind API token, optional
	store   twstock.DealStore
	log     twstock.Logger
}

// NewStockFetch returns a new instance of *StockFetch. 'store' may be nil,
// in which case no records are cached locally.
func NewStockFetch(store twstock.DealStore, log twstock.Logger, token string) *StockFetch {
	return &StockFetch{
		http:    NewHTTP(),
		baseURL: DefaultBaseURL,
		token:   token,
		store:   store,
		log:     log,
	}
}

// apiResponse is the FinMind response envelope. The embedded status is
// checked separately from the HTTP status: the server reports errors like
// bad parameters or an exceeded quota with 'status' != 200 and the reason
// in 'msg'.
type apiResponse struct {
	Msg    string           `json:"msg"`
	Status int              `json:"status"`
	Data   []twstock.Record `json:"data"`
}

// Deals returns the daily deal records for the query. Fetched records are
// cached on the local store; when the download fails and the store already
// holds records for the range, the cached records are served instead.
func (s StockFetch) Deals(q twstock.Query) ([]twstock.Record, error) {
	records, err := s.dealsFromAPI(q)
	if err == nil {
		if s.store != nil {
			if _, serr := s.store.Save(q.StockID, records); serr != nil {
				s.log.Warn("caching records of %s: %v", q.StockID, serr)
			}
		}
		return records, nil
	}

	cached, cerr := s.dealsFromStore(q)
	if cerr != nil {
		return nil, err // report the download failure, not the cache miss
	}
	s.log.Warn("download failed (%v), serving cached records", err)
	return cached, nil
}

// CachedDeals serves records for the query from the local store only.
func (s StockFetch) CachedDeals(q twstock.Query) ([]twstock.Record, error) {
	return s.dealsFromStore(q)
}

func (s StockFetch) dealsFromAPI(q twstock.Query) ([]twstock.Record, error) {
	v := url.Values{}
	v.Set("dataset", dealDataset)
	v.Add("data_id", q.StockID)
	v.Add("start_date", q.StartDate)
	v.Add("end_date", q.EndDate)
	if s.token != "" {
		v.Add("token", s.token)
	}

	s.log.Run("Downloading deal info for %s (%s to %s)", q.StockID, q.StartDate, q.EndDate)

	var resp apiResponse
	if err := s.http.JSON(s.baseURL+"?"+v.Encode(), &resp); err != nil {
		s.log.Nok()
		return nil, errors.Wrapf(err, "fetching deal info for %s", q.StockID)
	}
	if resp.Status != 200 {
		s.log.Nok()
		return nil, errors.Errorf("server refused the query (status %d): %s", resp.Status, resp.Msg)
	}
	s.log.Ok()

	return resp.Data, nil
}

func (s StockFetch) dealsFromStore(q twstock.Query) ([]twstock.Record, error) {
	if s.store == nil {
		return nil, errors.New("no local store configured")
	}
	records, err := s.store.Range(q.StockID, q.StartDate, q.EndDate)
	if err != nil {
		return nil, errors.Wrap(err, "reading cached records")
	}
	if len(records) == 0 {
		return nil, errors.Wrapf(twstock.ErrNoData,
			"no cached records for %s between %s and %s", q.StockID, q.StartDate, q.EndDate)
	}
	return records, nil
}
