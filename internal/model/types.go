// Package model defines domain types used by the receipt pipeline.
package model

import "github.com/shopspring/decimal"

// Product is a catalog entry. It is never mutated after loading.
type Product struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
}

// OrderLine is one requested (product, quantity) pair from the order file.
type OrderLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	// Line is the 1-based line in the source file, used in diagnostics.
	Line int `json:"-"`
}

// PricedLine is an order line after the pricing rule has been applied.
type PricedLine struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LinePrice   decimal.Decimal `json:"line_price"`
	BOGOApplied bool            `json:"bogo_applied"`
	// Line is the order file line this was priced from.
	Line int `json:"-"`
}

// PricedOrder is the accumulated result of pricing a whole order.
type PricedOrder struct {
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	// Names holds one product name per priced line, in input order.
	Names   []string     `json:"names"`
	Lines   []PricedLine `json:"lines"`
	Skipped []string     `json:"skipped,omitempty"`
}
