package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/inkom-receipt/internal/cli"
	"github.com/fairyhunter13/inkom-receipt/internal/loader"
)

func TestRunHelp(t *testing.T) {
	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-h"}))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRunBadFlag(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"-bogus"})
	var ee *cli.ExitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, 2, ee.Code)
}

func TestRunMissingCatalog(t *testing.T) {
	dir := t.TempDir()
	err := run(&bytes.Buffer{}, []string{
		"-products", filepath.Join(dir, "products.csv"),
		"-request", filepath.Join(dir, "request.csv"),
	})
	assert.True(t, errors.Is(err, loader.ErrCatalogNotFound))
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	products := filepath.Join(dir, "products.csv")
	request := filepath.Join(dir, "request.csv")
	require.NoError(t, os.WriteFile(products, []byte("Product #,Name,Price\nD083,1 cup yogurt,0.75\n"), 0o600))
	require.NoError(t, os.WriteFile(request, []byte("Product #,Quantity\nD083,2\n"), 0o600))
	t.Setenv("RECEIPT_BOGO_PRODUCT", "")
	t.Setenv("RECEIPT_TAX_RATE", "")

	out := &bytes.Buffer{}
	require.NoError(t, run(out, []string{"-products", products, "-request", request}))
	assert.Contains(t, out.String(), "1 cup yogurt: 2 @ 0.75 (BOGO applied: 1.13)\n")
	assert.Contains(t, out.String(), "Number of Items: 2\n")
	assert.Contains(t, out.String(), "Subtotal: 1.13\n")
	assert.Contains(t, out.String(), "Coupon: Get 10% off your next purchase of 1 cup yogurt!\n")
}
