package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"twstock"

	"github.com/stretchr/testify/assert"
)

func catalogServer() *httptest.Server {
	handler := http.NewServeMux()
	handler.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("dataset") != "TaiwanStockInfo" {
			_, _ = w.Write([]byte(`{"msg":"dataset not found","status":400,"data":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"msg":"success","status":200,"data":[` +
			`{"industry_category":"ETF","stock_id":"0050","stock_name":"元大台灣50","type":"twse"},` +
			`{"industry_category":"半導體業","stock_id":"2330","stock_name":"台積電","type":"twse"}]}`))
	})
	return httptest.NewServer(handler)
}

func TestStockFetch_Catalog(t *testing.T) {
	srv := catalogServer()
	defer srv.Close()

	s := newTestFetch(nil, srv.URL+"/data")

	got, err := s.Catalog()

	assert.Nil(t, err)
	want := []twstock.StockInfo{
		{ID: "0050", Name: "元大台灣50", Type: "twse", Industry: "ETF"},
		{ID: "2330", Name: "台積電", Type: "twse", Industry: "半導體業"},
	}
	assert.Equal(t, want, got)
}

func TestStockFetch_CatalogRefused(t *testing.T) {
	handler := http.NewServeMux()
	handler.HandleFunc("/data", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"msg":"token expired","status":401,"data":[]}`))
	})
	srv := httptest.NewServer(handler)
	defer srv.Close()

	s := newTestFetch(nil, srv.URL+"/data")

	got, err := s.Catalog()

	assert.Nil(t, got)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "token expired")
}
