// Package pricing applies the store's pricing rules to an order.
package pricing

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inkom-receipt/internal/model"
	"github.com/fairyhunter13/inkom-receipt/internal/obs"
)

var half = decimal.New(5, -1)

// Catalog is the product lookup the engine prices against.
type Catalog interface {
	Get(id string) (model.Product, bool)
}

// UnknownProductError reports an order line whose identifier is not in the
// catalog. It is recoverable: the line is skipped.
type UnknownProductError struct {
	ProductID string
	Line      int
}

func (e UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product ID '%s'", e.ProductID)
}

// Engine prices orders. BOGOProduct is the one identifier that gets the
// buy-one-get-one-half-off rule; every other product is priced flat.
type Engine struct {
	BOGOProduct string
	Logger      *slog.Logger
}

func New(bogoProduct string) Engine {
	return Engine{BOGOProduct: bogoProduct}
}

// LinePrice returns the price of qty units of product id at unit price.
// For the BOGO product every second unit is half price and an odd leftover
// unit is charged in full.
func (e Engine) LinePrice(id string, qty int, price decimal.Decimal) decimal.Decimal {
	q := decimal.NewFromInt(int64(qty))
	if id != e.BOGOProduct {
		return q.Mul(price)
	}
	pairs := decimal.NewFromInt(int64(qty / 2))
	rem := decimal.NewFromInt(int64(qty % 2))
	pair := price.Add(price.Mul(half))
	return pairs.Mul(pair).Add(rem.Mul(price))
}

// Price prices every line in order. Lines with unknown identifiers are
// logged, reported in the returned slice and left out of the totals.
func (e Engine) Price(c Catalog, lines []model.OrderLine) (model.PricedOrder, []UnknownProductError) {
	log := e.Logger
	if log == nil {
		log = obs.Logger
	}
	out := model.PricedOrder{Subtotal: decimal.Zero}
	var unknown []UnknownProductError
	for _, ol := range lines {
		p, ok := c.Get(ol.ProductID)
		if !ok {
			log.Warn("unknown_product", "product_id", ol.ProductID, "line", ol.Line)
			unknown = append(unknown, UnknownProductError{ProductID: ol.ProductID, Line: ol.Line})
			out.Skipped = append(out.Skipped, ol.ProductID)
			continue
		}
		lp := e.LinePrice(ol.ProductID, ol.Quantity, p.Price)
		out.Items += ol.Quantity
		out.Subtotal = out.Subtotal.Add(lp)
		out.Names = append(out.Names, p.Name)
		out.Lines = append(out.Lines, model.PricedLine{
			ProductID:   ol.ProductID,
			Name:        p.Name,
			Quantity:    ol.Quantity,
			UnitPrice:   p.Price,
			LinePrice:   lp,
			BOGOApplied: ol.ProductID == e.BOGOProduct && ol.Quantity > 1,
			Line:        ol.Line,
		})
		log.Debug("line_priced", "product_id", ol.ProductID, "quantity", ol.Quantity, "line_price", lp.StringFixed(2))
	}
	return out, unknown
}
