package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/inkom-receipt/internal/model"
	"github.com/fairyhunter13/inkom-receipt/internal/receipt"
)

func TestObserveOrder(t *testing.T) {
	r := NewRegistry()
	r.ObserveOrder(model.PricedOrder{
		Items: 5,
		Lines: []model.PricedLine{
			{ProductID: "D083", Quantity: 3, BOGOApplied: true},
			{ProductID: "D150", Quantity: 2},
		},
		Skipped: []string{"X999"},
	})
	assert.Equal(t, 2.0, testutil.ToFloat64(r.LinesPriced))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.LinesSkipped))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.Items))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.BOGOApplied))
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.ObserveReceipt(receipt.Receipt{Total: decimal.RequireFromString("26.50")})

	path := filepath.Join(t.TempDir(), "receipt.prom")
	require.NoError(t, r.WriteTextfile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "receipts_issued_total 1")
	assert.Contains(t, string(b), "receipt_total_amount_sum 26.5")
}
