package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fairyhunter13/inkom-receipt/internal/model"
	"github.com/fairyhunter13/inkom-receipt/internal/receipt"
)

type Registry struct {
	reg          *prometheus.Registry
	LinesPriced  prometheus.Counter
	LinesSkipped prometheus.Counter
	Items        prometheus.Counter
	BOGOApplied  prometheus.Counter
	Issued       prometheus.Counter
	TotalAmount  prometheus.Histogram
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	priced := prometheus.NewCounter(prometheus.CounterOpts{Name: "receipt_lines_priced_total"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "receipt_lines_skipped_total"})
	items := prometheus.NewCounter(prometheus.CounterOpts{Name: "receipt_items_total"})
	bogo := prometheus.NewCounter(prometheus.CounterOpts{Name: "receipt_bogo_applied_total"})
	issued := prometheus.NewCounter(prometheus.CounterOpts{Name: "receipts_issued_total"})
	total := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "receipt_total_amount",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500},
	})

	r.MustRegister(priced, skipped, items, bogo, issued, total)
	return &Registry{
		reg:          r,
		LinesPriced:  priced,
		LinesSkipped: skipped,
		Items:        items,
		BOGOApplied:  bogo,
		Issued:       issued,
		TotalAmount:  total,
	}
}

// ObserveOrder records the outcome of pricing one order.
func (r *Registry) ObserveOrder(o model.PricedOrder) {
	r.LinesPriced.Add(float64(len(o.Lines)))
	r.LinesSkipped.Add(float64(len(o.Skipped)))
	r.Items.Add(float64(o.Items))
	for _, l := range o.Lines {
		if l.BOGOApplied {
			r.BOGOApplied.Inc()
		}
	}
}

// ObserveReceipt records an issued receipt.
func (r *Registry) ObserveReceipt(rc receipt.Receipt) {
	r.Issued.Inc()
	total, _ := rc.Total.Float64()
	r.TotalAmount.Observe(total)
}

// WriteTextfile writes all metrics in the text exposition format to path.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
