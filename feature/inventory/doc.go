// Package inventory merges the manufacturer, price and service date lists
// into one keyed record set and derives the inventory reports from it.
//
// # Inputs
//
// Three header-less CSV lists keyed by item id:
//   - manufacturer list: id, manufacturer, item type, optional damaged flag
//   - price list: id, price
//   - service dates list: id, date (MM/DD/YYYY)
//
// Only the manufacturer list creates records; the other two update known
// records and ignore unknown ids. Short rows are skipped with a warning; a
// malformed service date aborts the load.
//
// # Reports
//
//   - FullInventory.csv: all items by manufacturer
//   - <Type>Inventory.csv: one per item type, by ascending price
//   - PastServiceDateInventory.csv: items serviced before now, oldest first
//   - DamagedInventory.csv: damaged items by descending price
//
// Besides writing files, the package serves the inventory over Fiber
// (Handler, Feature), uploads reports to object storage (Publisher) and
// persists snapshots through GORM (Store).
package inventory
