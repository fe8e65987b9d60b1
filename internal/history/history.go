// Package history persists recent calculation snapshots as a bounded
// JSON store under the user's home directory. The store keeps the ten
// most recent records; saving an eleventh evicts the oldest.
package history

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rshade/carbonfocus/internal/engine"
)

// ErrStoreCorrupted indicates the history file exists but contains
// invalid data. Callers should abort rather than silently start fresh.
var ErrStoreCorrupted = errors.New("history store corrupted")

// ErrRecordNotFound indicates no record exists with the requested ID.
var ErrRecordNotFound = errors.New("history record not found")

// StoreVersion is the current schema version of the history file.
const StoreVersion = 1

// MaxRecords bounds the store. The oldest record is evicted once the
// count would exceed this.
const MaxRecords = 10

// Record is one saved calculation snapshot. Totals are not stored;
// they are recomputed from the entries on read so a record can never
// disagree with its own data.
type Record struct {
	ID           string      `json:"id"`
	Date         string      `json:"date"`
	Organization string      `json:"organization,omitempty"`
	Data         engine.Data `json:"data"`
}

// Totals recomputes the aggregate emissions for the record's entries.
func (r Record) Totals() engine.Totals {
	return engine.ComputeTotals(r.Data)
}

// NewRecord builds a snapshot with a fresh ULID and the given capture
// time serialized as RFC 3339.
func NewRecord(capturedAt time.Time, organization string, data engine.Data) Record {
	return Record{
		ID:           ulid.Make().String(),
		Date:         capturedAt.UTC().Format(time.RFC3339),
		Organization: organization,
		Data:         data,
	}
}
