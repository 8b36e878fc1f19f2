// Package receipt turns a priced order into a printable receipt.
package receipt

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fairyhunter13/inkom-receipt/internal/model"
)

const (
	issuedLayout   = "Mon Jan 02 15:04:05 2006"
	returnByLayout = "Mon Jan 02 03:04 PM 2006"
)

// IntNer picks a uniformly random index in [0, n). *math/rand/v2.Rand
// satisfies it.
type IntNer interface {
	IntN(n int) int
}

// Receipt holds every computed field that ends up on the printed receipt.
type Receipt struct {
	ID            uuid.UUID          `json:"id"`
	StoreName     string             `json:"store_name"`
	Items         int                `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	IssuedAt      time.Time          `json:"issued_at"`
	DaysToNewYear int                `json:"days_to_new_year"`
	ReturnBy      time.Time          `json:"return_by"`
	HasCoupon     bool               `json:"has_coupon"`
	Coupon        string             `json:"coupon,omitempty"`
	CouponPercent int                `json:"coupon_percent,omitempty"`
	Lines         []model.PricedLine `json:"lines"`
}

// Builder computes receipts. Now and Rand may be replaced for tests; nil
// values fall back to time.Now and a package-level random source.
type Builder struct {
	StoreName     string
	TaxRate       decimal.Decimal
	ReturnDays    int
	ReturnHour    int
	CouponPercent int
	Now           func() time.Time
	Rand          IntNer
}

// Build computes tax, totals, dates and the coupon for order.
func (b Builder) Build(order model.PricedOrder) Receipt {
	now := time.Now()
	if b.Now != nil {
		now = b.Now()
	}
	subtotal := order.Subtotal.Round(2)
	tax := order.Subtotal.Mul(b.TaxRate).Round(2)
	r := Receipt{
		ID:            uuid.New(),
		StoreName:     b.StoreName,
		Items:         order.Items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         subtotal.Add(tax),
		IssuedAt:      now,
		DaysToNewYear: DaysUntilNewYear(now),
		ReturnBy:      ReturnBy(now, b.ReturnDays, b.ReturnHour),
		Lines:         order.Lines,
	}
	if len(order.Names) > 0 {
		r.HasCoupon = true
		r.Coupon = order.Names[b.intN(len(order.Names))]
		r.CouponPercent = b.CouponPercent
	}
	return r
}

func (b Builder) intN(n int) int {
	if b.Rand != nil {
		return b.Rand.IntN(n)
	}
	return defaultRand.IntN(n)
}

// DaysUntilNewYear returns the whole calendar days between now's wall clock
// and midnight on January 1 of the following year. Any time past midnight
// counts as a partial day and is dropped.
func DaysUntilNewYear(now time.Time) int {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	next := time.Date(y+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(next.Sub(today) / (24 * time.Hour))
	if h, mi, s := now.Clock(); h != 0 || mi != 0 || s != 0 || now.Nanosecond() != 0 {
		days--
	}
	return days
}

// ReturnBy returns the calendar date days after now with the time of day
// set to hour:00:00.
func ReturnBy(now time.Time, days, hour int) time.Time {
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

// Render writes the receipt block, one field per line.
func (r Receipt) Render(w io.Writer) error {
	lines := []string{
		r.StoreName,
		fmt.Sprintf("Number of Items: %d", r.Items),
		fmt.Sprintf("Subtotal: %s", r.Subtotal.StringFixed(2)),
		fmt.Sprintf("Sales Tax: %s", r.Tax.StringFixed(2)),
		fmt.Sprintf("Total: %s", r.Total.StringFixed(2)),
		fmt.Sprintf("Thank you for shopping at the %s.", r.StoreName),
		r.IssuedAt.Format(issuedLayout),
		fmt.Sprintf("Days until New Year's Sale: %d", r.DaysToNewYear),
		fmt.Sprintf("Return by: %s", r.ReturnBy.Format(returnByLayout)),
	}
	if r.HasCoupon {
		lines = append(lines, fmt.Sprintf("Coupon: Get %d%% off your next purchase of %s!", r.CouponPercent, r.Coupon))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// RenderLine writes one priced order line, noting where the BOGO discount
// was applied.
func RenderLine(w io.Writer, l model.PricedLine) error {
	var err error
	if l.BOGOApplied {
		_, err = fmt.Fprintf(w, "%s: %d @ %s (BOGO applied: %s)\n", l.Name, l.Quantity, l.UnitPrice.StringFixed(2), l.LinePrice.StringFixed(2))
	} else {
		_, err = fmt.Fprintf(w, "%s: %d @ %s\n", l.Name, l.Quantity, l.UnitPrice.StringFixed(2))
	}
	return err
}
