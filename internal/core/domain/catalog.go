package domain

import "sort"

// Catalog owns every product for the session, keyed by unique name. Entries
// are never removed; quantities change only through a committed checkout.
type Catalog struct {
	products map[string]*Product
}

func NewCatalog() *Catalog {
	return &Catalog{products: make(map[string]*Product)}
}

// AddOrReplace inserts the product under its name. A name collision silently
// replaces the previous entry (last write wins).
func (c *Catalog) AddOrReplace(p *Product) {
	c.products[p.Name()] = p
}

// Find returns the product registered under name, or ok=false.
func (c *Catalog) Find(name string) (*Product, bool) {
	p, ok := c.products[name]
	return p, ok
}

// Names returns the current product names in lexicographic order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.products))
	for name := range c.products {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns display descriptions in name order.
func (c *Catalog) List() []string {
	names := c.Names()
	descriptions := make([]string, 0, len(names))
	for _, name := range names {
		descriptions = append(descriptions, c.products[name].Describe())
	}
	return descriptions
}
