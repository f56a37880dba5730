package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

type Catalog struct {
	products []*Product
	byID     map[string]*Product
}

func NewCatalog(products ...*Product) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*Product, len(products))}
	for _, p := range products {
		if _, dup := c.byID[p.ID()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProductID, p.ID())
		}
		c.byID[p.ID()] = p
		c.products = append(c.products, p)
	}
	return c, nil
}

func (c *Catalog) Lookup(id string) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns products in file order.
func (c *Catalog) Products() []*Product {
	return append([]*Product(nil), c.products...)
}

type catalogFile struct {
	Products []struct {
		ID          string `toml:"id"`
		Name        string `toml:"name"`
		Description string `toml:"description"`
		UnitName    string `toml:"unit_name"`
		PriceNative string `toml:"price_native"`
		PriceToken  string `toml:"price_token"`
	} `toml:"products"`
}

// Load reads a catalog file; an empty path selects the built-in catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Parse(defaultCatalog)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes TOML catalog data. Prices are strings so they never pass through float64.
func Parse(raw []byte) (*Catalog, error) {
	var f catalogFile
	if _, err := toml.Decode(string(raw), &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	products := make([]*Product, 0, len(f.Products))
	for _, entry := range f.Products {
		native, err := decimal.NewFromString(entry.PriceNative)
		if err != nil {
			return nil, fmt.Errorf("product %q: invalid price_native: %w", entry.ID, err)
		}
		token, err := decimal.NewFromString(entry.PriceToken)
		if err != nil {
			return nil, fmt.Errorf("product %q: invalid price_token: %w", entry.ID, err)
		}
		p, err := NewProduct(entry.ID, entry.Name, entry.Description, entry.UnitName, native, token)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", entry.ID, err)
		}
		products = append(products, p)
	}
	return NewCatalog(products...)
}
