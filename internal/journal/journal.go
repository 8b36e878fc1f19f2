// Package journal keeps a local history of issued receipts in pebble.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"
	"github.com/google/uuid"

	"github.com/fairyhunter13/inkom-receipt/internal/receipt"
)

const (
	receiptPrefix = "receipt/"
	indexPrefix   = "id/"
	// keyLayout is fixed width so keys sort in issue order.
	keyLayout = "2006-01-02T15:04:05.000000000Z"
)

// ErrNotFound is returned by Get for an unknown receipt id.
var ErrNotFound = errors.New("receipt not found")

// Journal stores receipts keyed by issue time so List returns them in
// issue order. A secondary id/<uuid> key points at the primary key.
type Journal struct {
	db *pebble.DB
}

func Open(dir string) (*Journal, error) {
	d, err := pebble.Open(filepath.Clean(dir), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble open: %w", err)
	}
	return &Journal{db: d}, nil
}

func (j *Journal) Close() error { return j.db.Close() }

func primaryKey(r receipt.Receipt) []byte {
	return []byte(receiptPrefix + r.IssuedAt.UTC().Format(keyLayout) + "/" + r.ID.String())
}

// Append stores r durably.
func (j *Journal) Append(r receipt.Receipt) error {
	val, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode receipt: %w", err)
	}
	pk := primaryKey(r)
	b := j.db.NewBatch()
	defer b.Close()
	if err := b.Set(pk, val, nil); err != nil {
		return err
	}
	if err := b.Set([]byte(indexPrefix+r.ID.String()), pk, nil); err != nil {
		return err
	}
	return b.Commit(pebble.Sync)
}

// Get loads the receipt with the given id.
func (j *Journal) Get(id uuid.UUID) (receipt.Receipt, error) {
	pk, err := j.get([]byte(indexPrefix + id.String()))
	if err != nil {
		return receipt.Receipt{}, err
	}
	val, err := j.get(pk)
	if err != nil {
		return receipt.Receipt{}, err
	}
	var r receipt.Receipt
	if err := json.Unmarshal(val, &r); err != nil {
		return receipt.Receipt{}, fmt.Errorf("decode receipt %s: %w", id, err)
	}
	return r, nil
}

func (j *Journal) get(key []byte) ([]byte, error) {
	v, closer, err := j.db.Get(key)
	if err == pebble.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// List returns all stored receipts ordered by issue time.
func (j *Journal) List() ([]receipt.Receipt, error) {
	it, err := j.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte(receiptPrefix),
		UpperBound: []byte("receipt0"), // '0' sorts right after '/'
	})
	if err != nil {
		return nil, err
	}
	defer it.Close()
	var out []receipt.Receipt
	for it.First(); it.Valid(); it.Next() {
		var r receipt.Receipt
		if err := json.Unmarshal(it.Value(), &r); err != nil {
			return nil, fmt.Errorf("decode %s: %w", it.Key(), err)
		}
		out = append(out, r)
	}
	return out, it.Error()
}
