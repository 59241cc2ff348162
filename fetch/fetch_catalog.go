package fetch

import (
	"encoding/json"
	"net/url"
	"strings"

	"twstock"

	"github.com/gocolly/colly"
	"github.com/pkg/errors"
)

// FinMind dataset with the TWSE security listing.
const catalogDataset = "TaiwanStockInfo"

// Catalog downloads the full TWSE security catalog: every listed stock id
// with its name, type and industry. The listing changes rarely, so callers
// are expected to persist it locally (see parsers.CatalogToYaml).
func (s StockFetch) Catalog() ([]twstock.StockInfo, error) {
	var list []twstock.StockInfo
	var apiErr error

	c := colly.NewCollector()

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json")
	})

	c.OnError(func(r *colly.Response, err error) {
		apiErr = errors.Wrap(err, "fetching security catalog")
	})

	c.OnResponse(func(r *colly.Response) {
		if !strings.Contains(r.Headers.Get("Content-Type"), "application/json") {
			apiErr = errors.Errorf("unexpected content type %q", r.Headers.Get("Content-Type"))
			return
		}
		var resp struct {
			Msg    string              `json:"msg"`
			Status int                 `json:"status"`
			Data   []twstock.StockInfo `json:"data"`
		}
		if err := json.Unmarshal(r.Body, &resp); err != nil {
			apiErr = errors.Wrap(err, "decoding security catalog")
			return
		}
		if resp.Status != 200 {
			apiErr = errors.Errorf("server refused the query (status %d): %s", resp.Status, resp.Msg)
			return
		}
		list = resp.Data
	})

	v := url.Values{}
	v.Set("dataset", catalogDataset)
	if s.token != "" {
		v.Add("token", s.token)
	}

	s.log.Run("Downloading security catalog")
	if err := c.Visit(s.baseURL + "?" + v.Encode()); err != nil && apiErr == nil {
		apiErr = err
	}
	if apiErr != nil {
		s.log.Nok()
		return nil, apiErr
	}
	if len(list) == 0 {
		s.log.Nok()
		return nil, errors.Wrap(twstock.ErrNoData, "empty security catalog")
	}
	s.log.Ok()

	return list, nil
}
