package inventory

import (
	"cmp"
	"slices"
	"time"

	"inventory-manager/core/utils"

	"github.com/shopspring/decimal"
)

// Fixed report file names; per-type reports use TypeInventoryFile.
const (
	FullInventoryFile            = "FullInventory.csv"
	DamagedInventoryFile         = "DamagedInventory.csv"
	PastServiceDateInventoryFile = "PastServiceDateInventory.csv"
)

// Report is a derived CSV view of the inventory.
type Report struct {
	File string
	Rows [][]string
}

// TypeInventoryFile returns the per-type report name, e.g. "LaptopInventory.csv".
func TypeInventoryFile(itemType string) string {
	return utils.Capitalize(itemType) + "Inventory.csv"
}

// FullInventory lists every record sorted by manufacturer.
func FullInventory(inv *Inventory) Report {
	records := inv.Records()
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(a.Manufacturer, b.Manufacturer)
	})
	return Report{File: FullInventoryFile, Rows: rows(records, fullRow)}
}

// TypeInventories returns one report per item type, in order of first
// appearance, each sorted by ascending price with unpriced items first.
func TypeInventories(inv *Inventory) []Report {
	var types []string
	groups := make(map[string][]Record)
	for _, r := range inv.Records() {
		if _, ok := groups[r.ItemType]; !ok {
			types = append(types, r.ItemType)
		}
		groups[r.ItemType] = append(groups[r.ItemType], r)
	}

	reports := make([]Report, 0, len(types))
	for _, t := range types {
		records := groups[t]
		slices.SortStableFunc(records, func(a, b Record) int {
			return comparePrice(a.Price, b.Price)
		})
		reports = append(reports, Report{File: TypeInventoryFile(t), Rows: rows(records, typeRow)})
	}
	return reports
}

// TypeInventory returns the report whose file name matches itemType once capitalized.
func TypeInventory(inv *Inventory, itemType string) (Report, bool) {
	file := TypeInventoryFile(itemType)
	for _, rep := range TypeInventories(inv) {
		if rep.File == file {
			return rep, true
		}
	}
	return Report{}, false
}

// PastServiceDateInventory lists records serviced strictly before now, oldest first.
func PastServiceDateInventory(inv *Inventory, now time.Time) Report {
	var records []Record
	for _, r := range inv.Records() {
		if r.ServiceDate != nil && r.ServiceDate.Before(now) {
			records = append(records, r)
		}
	}
	slices.SortStableFunc(records, func(a, b Record) int {
		return a.ServiceDate.Compare(*b.ServiceDate)
	})
	return Report{File: PastServiceDateInventoryFile, Rows: rows(records, fullRow)}
}

// DamagedInventory lists damaged records by descending price, unpriced items last.
func DamagedInventory(inv *Inventory) Report {
	var records []Record
	for _, r := range inv.Records() {
		if r.IsDamaged() {
			records = append(records, r)
		}
	}
	slices.SortStableFunc(records, func(a, b Record) int {
		return comparePrice(b.Price, a.Price)
	})
	return Report{File: DamagedInventoryFile, Rows: rows(records, damagedRow)}
}

// AllReports returns every report in generation order.
func AllReports(inv *Inventory, now time.Time) []Report {
	reports := []Report{FullInventory(inv)}
	reports = append(reports, TypeInventories(inv)...)
	return append(reports, PastServiceDateInventory(inv, now), DamagedInventory(inv))
}

// comparePrice orders unpriced before priced.
func comparePrice(a, b *decimal.Decimal) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return a.Cmp(*b)
	}
}

func rows(records []Record, format func(Record) []string) [][]string {
	out := make([][]string, 0, len(records))
	for _, r := range records {
		out = append(out, format(r))
	}
	return out
}

func fullRow(r Record) []string {
	return []string{r.ID, r.Manufacturer, r.ItemType, r.PriceString(), r.ServiceDateString(), r.DamagedMarker()}
}

func typeRow(r Record) []string {
	return []string{r.ID, r.Manufacturer, r.PriceString(), r.ServiceDateString(), r.DamagedMarker()}
}

func damagedRow(r Record) []string {
	return []string{r.ID, r.Manufacturer, r.ItemType, r.PriceString(), r.ServiceDateString()}
}
