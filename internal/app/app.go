// Package app wires the receipt pipeline: load, price, build, print, and
// the optional journal and metrics outputs.
package app

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fairyhunter13/inkom-receipt/internal/config"
	"github.com/fairyhunter13/inkom-receipt/internal/journal"
	"github.com/fairyhunter13/inkom-receipt/internal/loader"
	"github.com/fairyhunter13/inkom-receipt/internal/metrics"
	"github.com/fairyhunter13/inkom-receipt/internal/model"
	"github.com/fairyhunter13/inkom-receipt/internal/obs"
	"github.com/fairyhunter13/inkom-receipt/internal/pricing"
	"github.com/fairyhunter13/inkom-receipt/internal/receipt"
)

type App struct {
	Cfg     config.Config
	Out     io.Writer
	Now     func() time.Time
	Rand    receipt.IntNer
	Metrics *metrics.Registry
}

func New(cfg config.Config, out io.Writer) *App {
	return &App{Cfg: cfg, Out: out, Metrics: metrics.NewRegistry()}
}

// Run executes one receipt run. Missing or malformed input files are
// returned as errors; unknown products are reported and skipped.
func (a *App) Run() (receipt.Receipt, error) {
	log := obs.Logger
	log.Info("receipt_starting", "products", a.Cfg.ProductsPath, "request", a.Cfg.RequestPath)

	catalog, err := loader.LoadCatalog(a.Cfg.ProductsPath)
	if err != nil {
		return receipt.Receipt{}, err
	}
	log.Info("catalog_loaded", "products", catalog.Len())
	log.Debug("catalog_ids", "ids", catalog.IDs())

	lines, err := loader.LoadOrder(a.Cfg.RequestPath)
	if err != nil {
		return receipt.Receipt{}, err
	}
	log.Info("order_loaded", "lines", len(lines))

	engine := pricing.New(a.Cfg.BOGOProduct)
	order, unknown := engine.Price(catalog, lines)
	if err := a.writeLines(order.Lines, unknown); err != nil {
		return receipt.Receipt{}, err
	}

	b := receipt.Builder{
		StoreName:     a.Cfg.StoreName,
		TaxRate:       a.Cfg.TaxRate,
		ReturnDays:    a.Cfg.ReturnDays,
		ReturnHour:    a.Cfg.ReturnHour,
		CouponPercent: a.Cfg.CouponPercent,
		Now:           a.Now,
		Rand:          a.Rand,
	}
	r := b.Build(order)
	if err := r.Render(a.Out); err != nil {
		return r, err
	}
	log.Info("receipt_issued",
		"receipt_id", r.ID.String(),
		"items", r.Items,
		"subtotal", r.Subtotal.StringFixed(2),
		"total", r.Total.StringFixed(2),
		"skipped", len(order.Skipped),
	)

	if a.Metrics != nil {
		a.Metrics.ObserveOrder(order)
		a.Metrics.ObserveReceipt(r)
	}
	a.record(r)
	return r, nil
}

// writeLines prints priced lines and unknown-product errors merged back into
// order file order. Both slices are already sorted by line.
func (a *App) writeLines(priced []model.PricedLine, unknown []pricing.UnknownProductError) error {
	requestName := filepath.Base(a.Cfg.RequestPath)
	i, j := 0, 0
	for i < len(priced) || j < len(unknown) {
		if j < len(unknown) && (i == len(priced) || unknown[j].Line < priced[i].Line) {
			if _, err := fmt.Fprintf(a.Out, "Error: %s in %s\n", unknown[j].Error(), requestName); err != nil {
				return err
			}
			j++
			continue
		}
		if err := receipt.RenderLine(a.Out, priced[i]); err != nil {
			return err
		}
		i++
	}
	return nil
}

// record writes the optional outputs. The receipt is already printed, so
// failures here are logged rather than returned.
func (a *App) record(r receipt.Receipt) {
	if a.Cfg.JournalDir != "" {
		if err := appendJournal(a.Cfg.JournalDir, r); err != nil {
			obs.Logger.Error("journal_write_error", "dir", a.Cfg.JournalDir, "error", err)
		}
	}
	if a.Cfg.MetricsFile != "" && a.Metrics != nil {
		if err := a.Metrics.WriteTextfile(a.Cfg.MetricsFile); err != nil {
			obs.Logger.Error("metrics_write_error", "file", a.Cfg.MetricsFile, "error", err)
		}
	}
}

func appendJournal(dir string, r receipt.Receipt) error {
	j, err := journal.Open(dir)
	if err != nil {
		return err
	}
	if err := j.Append(r); err != nil {
		_ = j.Close()
		return err
	}
	return j.Close()
}
