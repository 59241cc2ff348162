package parsers

import (
	"io/ioutil"

	"twstock"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Catalog is the locally persisted TWSE security listing.
type Catalog struct {
	Updated string              `yaml:"updated"` // YYYY-MM-DD of the last refresh
	Stocks  []twstock.StockInfo `yaml:"stocks"`
}

// CatalogToYaml saves the security listing into a YAML file, recording
// today as the refresh date.
func CatalogToYaml(stocks []twstock.StockInfo, yamlFile string) error {
	c := Catalog{Updated: twstock.Today(), Stocks: stocks}

	m, err := yaml.Marshal(&c)
	if err != nil {
		return errors.Wrap(err, "encoding catalog")
	}
	return errors.Wrapf(ioutil.WriteFile(yamlFile, m, 0644), "writing %s", yamlFile)
}

// CatalogFromYaml loads a catalog previously saved by CatalogToYaml.
func CatalogFromYaml(yamlFile string) (*Catalog, error) {
	y, err := ioutil.ReadFile(yamlFile)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", yamlFile)
	}

	c := Catalog{}
	if err := yaml.Unmarshal(y, &c); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", yamlFile)
	}
	return &c, nil
}
