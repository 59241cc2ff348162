package parsers

import (
	"path/filepath"
	"testing"

	"twstock"

	"github.com/stretchr/testify/assert"
)

func TestCatalogYaml(t *testing.T) {
	yamlFile := filepath.Join(t.TempDir(), "stocks.yml")

	stocks := []twstock.StockInfo{
		{ID: "0050", Name: "元大台灣50", Type: "twse", Industry: "ETF"},
		{ID: "2330", Name: "台積電", Type: "twse", Industry: "半導體業"},
	}

	err := CatalogToYaml(stocks, yamlFile)
	assert.Nil(t, err)

	got, err := CatalogFromYaml(yamlFile)
	assert.Nil(t, err)
	assert.Equal(t, stocks, got.Stocks)
	assert.Equal(t, twstock.Today(), got.Updated)
}

func TestCatalogFromYaml_Missing(t *testing.T) {
	_, err := CatalogFromYaml(filepath.Join(t.TempDir(), "nope.yml"))
	assert.NotNil(t, err)
}
