package store

import (
	"sort"

	"github.com/fairyhunter13/inkom-receipt/internal/model"
)

// Catalog is a read-only product lookup keyed by product identifier.
type Catalog struct {
	m map[string]model.Product
}

func New() *Catalog {
	return &Catalog{m: make(map[string]model.Product)}
}

// Put adds or replaces a product. Later rows with the same identifier win,
// which mirrors how the catalog file is read top to bottom.
func (c *Catalog) Put(p model.Product) {
	if p.ProductID == "" {
		return
	}
	c.m[p.ProductID] = p
}

func (c *Catalog) Get(id string) (model.Product, bool) {
	p, ok := c.m[id]
	return p, ok
}

func (c *Catalog) Len() int { return len(c.m) }

// IDs returns the product identifiers in lexical order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.m))
	for id := range c.m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
