// Package config provides runtime configuration values for the receipt run.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"
)

// Config holds input locations, pricing rules and output knobs.
type Config struct {
	ProductsPath  string
	RequestPath   string
	StoreName     string
	TaxRate       decimal.Decimal
	BOGOProduct   string
	ReturnDays    int
	ReturnHour    int
	CouponPercent int
	JournalDir    string
	MetricsFile   string
	LogLevel      string
	LogFormat     string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func decenv(key, def string) decimal.Decimal {
	d := decimal.RequireFromString(def)
	v := getenv(key, "")
	if v == "" {
		return d
	}
	n, err := decimal.NewFromString(v)
	if err != nil {
		return d
	}
	return n
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		ProductsPath:  getenv("RECEIPT_PRODUCTS_PATH", "products.csv"),
		RequestPath:   getenv("RECEIPT_REQUEST_PATH", "request.csv"),
		StoreName:     getenv("RECEIPT_STORE_NAME", "Inkom Emporium"),
		TaxRate:       decenv("RECEIPT_TAX_RATE", "0.06"),
		BOGOProduct:   getenv("RECEIPT_BOGO_PRODUCT", "D083"),
		ReturnDays:    atoienv("RECEIPT_RETURN_DAYS", 30),
		ReturnHour:    atoienv("RECEIPT_RETURN_HOUR", 21),
		CouponPercent: atoienv("RECEIPT_COUPON_PERCENT", 10),
		JournalDir:    getenv("RECEIPT_JOURNAL_DIR", ""),
		MetricsFile:   getenv("RECEIPT_METRICS_FILE", ""),
		LogLevel:      getenv("LOG_LEVEL", "warn"),
		LogFormat:     getenv("LOG_FORMAT", "text"),
	}
}

// Validate rejects values the pricing and receipt stages cannot use.
func (c Config) Validate() error {
	var errs []error
	if c.ProductsPath == "" {
		errs = append(errs, errors.New("products path is required"))
	}
	if c.RequestPath == "" {
		errs = append(errs, errors.New("request path is required"))
	}
	if c.TaxRate.IsNegative() {
		errs = append(errs, fmt.Errorf("tax rate must be >= 0, got %s", c.TaxRate))
	}
	if c.BOGOProduct == "" {
		errs = append(errs, errors.New("bogo product is required"))
	}
	if c.ReturnDays < 0 {
		errs = append(errs, fmt.Errorf("return days must be >= 0, got %d", c.ReturnDays))
	}
	if c.ReturnHour < 0 || c.ReturnHour > 23 {
		errs = append(errs, fmt.Errorf("return hour must be in 0..23, got %d", c.ReturnHour))
	}
	if c.CouponPercent < 0 || c.CouponPercent > 100 {
		errs = append(errs, fmt.Errorf("coupon percent must be in 0..100, got %d", c.CouponPercent))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log format must be text or json, got %q", c.LogFormat))
	}
	return errors.Join(errs...)
}
