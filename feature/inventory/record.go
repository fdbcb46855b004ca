package inventory

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DateLayout is the output format of service dates.
	DateLayout = "01/02/2006"
	// parseLayout accepts both zero-padded and bare month/day numbers.
	parseLayout = "1/2/2006"

	damagedMarker = "damaged"
)

// Record is one inventory item's merged attributes.
type Record struct {
	ID           string           `json:"id"`
	Manufacturer string           `json:"manufacturer"`
	ItemType     string           `json:"item_type"`
	Damaged      string           `json:"damaged"`
	Price        *decimal.Decimal `json:"price"`
	ServiceDate  *time.Time       `json:"service_date"`
}

// IsDamaged reports whether the damaged flag is set.
func (r Record) IsDamaged() bool {
	return r.Damaged != ""
}

// PriceString returns the price in decimal form, or "" when unpriced.
// Whole numbers keep one fractional digit, so 199 is written as "199.0".
func (r Record) PriceString() string {
	if r.Price == nil {
		return ""
	}
	s := r.Price.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ServiceDateString returns the service date as MM/DD/YYYY, or "" when unset.
func (r Record) ServiceDateString() string {
	if r.ServiceDate == nil {
		return ""
	}
	return r.ServiceDate.Format(DateLayout)
}

// DamagedMarker returns "damaged" for damaged records and "" otherwise.
func (r Record) DamagedMarker() string {
	if r.IsDamaged() {
		return damagedMarker
	}
	return ""
}
