package pricing

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/inkom-receipt/internal/model"
	"github.com/fairyhunter13/inkom-receipt/internal/store"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testCatalog() *store.Catalog {
	c := store.New()
	c.Put(model.Product{ProductID: "D083", Name: "1 cup yogurt", Price: dec("10.00")})
	c.Put(model.Product{ProductID: "D150", Name: "1 gallon milk", Price: dec("2.85")})
	c.Put(model.Product{ProductID: "W231", Name: "32 oz granola", Price: dec("3.21")})
	return c
}

func quietEngine() Engine {
	e := New("D083")
	e.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return e
}

func TestLinePriceBOGO(t *testing.T) {
	e := New("D083")
	tests := []struct {
		qty  int
		want string
	}{
		{1, "10"},
		{2, "15"},
		{3, "25"},
		{4, "30"},
		{7, "55"},
	}
	for _, tt := range tests {
		got := e.LinePrice("D083", tt.qty, dec("10.00"))
		assert.True(t, got.Equal(dec(tt.want)), "qty %d: got %s want %s", tt.qty, got, tt.want)
	}
}

func TestLinePriceFlat(t *testing.T) {
	e := New("D083")
	got := e.LinePrice("D150", 3, dec("2.85"))
	assert.Equal(t, "8.55", got.StringFixed(2))
}

func TestPriceAccumulates(t *testing.T) {
	order, unknown := quietEngine().Price(testCatalog(), []model.OrderLine{
		{ProductID: "D083", Quantity: 3, Line: 1},
		{ProductID: "D150", Quantity: 2, Line: 2},
	})
	assert.Empty(t, unknown)
	assert.Equal(t, 5, order.Items)
	assert.Equal(t, "30.70", order.Subtotal.StringFixed(2))
	assert.Equal(t, []string{"1 cup yogurt", "1 gallon milk"}, order.Names)
	require.Len(t, order.Lines, 2)
	assert.True(t, order.Lines[0].BOGOApplied)
	assert.False(t, order.Lines[1].BOGOApplied)
}

func TestPriceBOGOSingleUnitNotFlaggedApplied(t *testing.T) {
	order, _ := quietEngine().Price(testCatalog(), []model.OrderLine{{ProductID: "D083", Quantity: 1}})
	require.Len(t, order.Lines, 1)
	assert.False(t, order.Lines[0].BOGOApplied)
	assert.Equal(t, "10.00", order.Subtotal.StringFixed(2))
}

func TestPriceSkipsUnknownProducts(t *testing.T) {
	var logs bytes.Buffer
	e := New("D083")
	e.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	order, unknown := e.Price(testCatalog(), []model.OrderLine{
		{ProductID: "X999", Quantity: 4, Line: 1},
		{ProductID: "W231", Quantity: 1, Line: 2},
	})
	require.Len(t, unknown, 1)
	assert.Equal(t, "X999", unknown[0].ProductID)
	assert.Equal(t, 1, unknown[0].Line)
	assert.Equal(t, "unknown product ID 'X999'", unknown[0].Error())
	assert.Equal(t, []string{"X999"}, order.Skipped)

	assert.Equal(t, 1, order.Items)
	assert.Equal(t, "3.21", order.Subtotal.StringFixed(2))
	assert.Equal(t, []string{"32 oz granola"}, order.Names)
	assert.Contains(t, logs.String(), "unknown_product")
	assert.Contains(t, logs.String(), "X999")
}

func TestPriceNamesOncePerLine(t *testing.T) {
	order, _ := quietEngine().Price(testCatalog(), []model.OrderLine{
		{ProductID: "D150", Quantity: 5},
		{ProductID: "D150", Quantity: 1},
	})
	assert.Equal(t, []string{"1 gallon milk", "1 gallon milk"}, order.Names)
	assert.Equal(t, 6, order.Items)
}

func TestSubtotalInvariantUnderReordering(t *testing.T) {
	lines := []model.OrderLine{
		{ProductID: "D083", Quantity: 5},
		{ProductID: "D150", Quantity: 2},
		{ProductID: "NOPE", Quantity: 9},
		{ProductID: "W231", Quantity: 3},
	}
	e := quietEngine()
	want, _ := e.Price(testCatalog(), lines)

	reversed := make([]model.OrderLine, len(lines))
	for i, l := range lines {
		reversed[len(lines)-1-i] = l
	}
	got, _ := e.Price(testCatalog(), reversed)
	assert.True(t, want.Subtotal.Equal(got.Subtotal))
	assert.Equal(t, want.Items, got.Items)
}

func TestPriceEmptyOrder(t *testing.T) {
	order, unknown := quietEngine().Price(testCatalog(), nil)
	assert.Empty(t, unknown)
	assert.Zero(t, order.Items)
	assert.True(t, order.Subtotal.IsZero())
	assert.Empty(t, order.Names)
}

func TestPriceKeepsSourceLine(t *testing.T) {
	order, _ := quietEngine().Price(testCatalog(), []model.OrderLine{
		{ProductID: "D150", Quantity: 1, Line: 2},
		{ProductID: "W231", Quantity: 1, Line: 5},
	})
	require.Len(t, order.Lines, 2)
	assert.Equal(t, 2, order.Lines[0].Line)
	assert.Equal(t, 5, order.Lines[1].Line)
}
