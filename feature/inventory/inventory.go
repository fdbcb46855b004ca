package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inventory is the keyed record set of one run. It remembers the order in
// which identifiers were first loaded; every report sort is stable on it.
type Inventory struct {
	records map[string]*Record
	order   []string
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{records: make(map[string]*Record)}
}

// Put stores a base record. A known identifier has its whole record replaced
// (price and service date included) but keeps its original position.
func (inv *Inventory) Put(rec Record) {
	if _, ok := inv.records[rec.ID]; !ok {
		inv.order = append(inv.order, rec.ID)
	}
	r := rec
	inv.records[rec.ID] = &r
}

// SetPrice updates the price of a known record and reports whether it exists.
func (inv *Inventory) SetPrice(id string, price decimal.Decimal) bool {
	r, ok := inv.records[id]
	if !ok {
		return false
	}
	r.Price = &price
	return true
}

// SetServiceDate updates the service date of a known record and reports whether it exists.
func (inv *Inventory) SetServiceDate(id string, date time.Time) bool {
	r, ok := inv.records[id]
	if !ok {
		return false
	}
	r.ServiceDate = &date
	return true
}

// Get returns a copy of the record with the given identifier.
func (inv *Inventory) Get(id string) (Record, bool) {
	r, ok := inv.records[id]
	if !ok {
		return Record{}, false
	}
	return *r, true
}

// Len returns the number of records.
func (inv *Inventory) Len() int {
	return len(inv.order)
}

// Records returns copies of all records in load order.
func (inv *Inventory) Records() []Record {
	out := make([]Record, 0, len(inv.order))
	for _, id := range inv.order {
		out = append(out, *inv.records[id])
	}
	return out
}
