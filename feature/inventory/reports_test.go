package inventory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// fixture builds:
//
//	A1 Acme  laptop 999.99 2020-01-01
//	B2 Bolt  phone  199    2030-05-05 damaged
//	C3 Acme  Laptop 450.5  2019-03-03 damaged
//	D4 Crate phone  -      -          damaged
//	E5 Apex  laptop 450.5  2019-03-03
func fixture() *Inventory {
	inv := New()
	inv.Put(Record{ID: "A1", Manufacturer: "Acme", ItemType: "laptop"})
	inv.Put(Record{ID: "B2", Manufacturer: "Bolt", ItemType: "phone", Damaged: "y"})
	inv.Put(Record{ID: "C3", Manufacturer: "Acme", ItemType: "Laptop", Damaged: "y"})
	inv.Put(Record{ID: "D4", Manufacturer: "Crate", ItemType: "phone", Damaged: "y"})
	inv.Put(Record{ID: "E5", Manufacturer: "Apex", ItemType: "laptop"})

	inv.SetPrice("A1", decimal.RequireFromString("999.99"))
	inv.SetPrice("B2", decimal.RequireFromString("199"))
	inv.SetPrice("C3", decimal.RequireFromString("450.5"))
	inv.SetPrice("E5", decimal.RequireFromString("450.50"))

	inv.SetServiceDate("A1", day(2020, 1, 1))
	inv.SetServiceDate("B2", day(2030, 5, 5))
	inv.SetServiceDate("C3", day(2019, 3, 3))
	inv.SetServiceDate("E5", day(2019, 3, 3))
	return inv
}

func ids(rows [][]string) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r[0])
	}
	return out
}

func TestFullInventory(t *testing.T) {
	t.Run("Example", func(t *testing.T) {
		inv := New()
		inv.Put(Record{ID: "A1", Manufacturer: "Acme", ItemType: "Laptop"})
		inv.SetPrice("A1", decimal.RequireFromString("999.99"))
		inv.SetServiceDate("A1", day(2020, 1, 1))

		rep := FullInventory(inv)
		assert.Equal(t, FullInventoryFile, rep.File)
		assert.Equal(t, [][]string{{"A1", "Acme", "Laptop", "999.99", "01/01/2020", ""}}, rep.Rows)
	})

	t.Run("SortedByManufacturer", func(t *testing.T) {
		rep := FullInventory(fixture())

		// Stable: A1 precedes C3 for the shared manufacturer.
		assert.Equal(t, []string{"A1", "C3", "E5", "B2", "D4"}, ids(rep.Rows))
		assert.Equal(t, []string{"D4", "Crate", "phone", "", "", "damaged"}, rep.Rows[4])
	})

	t.Run("EveryIdentifierOnce", func(t *testing.T) {
		inv := fixture()
		rep := FullInventory(inv)
		assert.Len(t, rep.Rows, inv.Len())
		assert.ElementsMatch(t, []string{"A1", "B2", "C3", "D4", "E5"}, ids(rep.Rows))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, FullInventory(New()).Rows)
	})
}

func TestTypeInventories(t *testing.T) {
	reports := TypeInventories(fixture())

	// laptop and Laptop are distinct types that share one file name.
	require.Len(t, reports, 3)
	assert.Equal(t, "LaptopInventory.csv", reports[0].File)
	assert.Equal(t, "PhoneInventory.csv", reports[1].File)
	assert.Equal(t, "LaptopInventory.csv", reports[2].File)

	assert.Equal(t, []string{"E5", "A1"}, ids(reports[0].Rows))
	assert.Equal(t, []string{"E5", "Apex", "450.5", "03/03/2019", ""}, reports[0].Rows[0])

	// Unpriced first.
	assert.Equal(t, []string{"D4", "B2"}, ids(reports[1].Rows))
	assert.Equal(t, []string{"B2", "Bolt", "199.0", "05/05/2030", "damaged"}, reports[1].Rows[1])

	assert.Equal(t, []string{"C3"}, ids(reports[2].Rows))
}

func TestTypeInventories_Partition(t *testing.T) {
	inv := fixture()
	total := 0
	for _, rep := range TypeInventories(inv) {
		var itemType string
		for i, row := range rep.Rows {
			rec, ok := inv.Get(row[0])
			require.True(t, ok)
			if i == 0 {
				itemType = rec.ItemType
			}
			assert.Equal(t, itemType, rec.ItemType, "report %s mixes types", rep.File)
		}
		total += len(rep.Rows)
	}
	assert.Equal(t, inv.Len(), total)
}

func TestTypeInventory(t *testing.T) {
	inv := fixture()

	rep, ok := TypeInventory(inv, "PHONE")
	require.True(t, ok)
	assert.Equal(t, "PhoneInventory.csv", rep.File)

	_, ok = TypeInventory(inv, "tablet")
	assert.False(t, ok)
}

func TestPastServiceDateInventory(t *testing.T) {
	rep := PastServiceDateInventory(fixture(), testNow)

	assert.Equal(t, PastServiceDateInventoryFile, rep.File)
	// B2 is in the future and D4 has no date.
	assert.Equal(t, []string{"C3", "E5", "A1"}, ids(rep.Rows))
	assert.Equal(t, []string{"C3", "Acme", "Laptop", "450.5", "03/03/2019", "damaged"}, rep.Rows[0])
}

func TestPastServiceDateInventory_StrictlyBefore(t *testing.T) {
	inv := New()
	inv.Put(Record{ID: "A1"})
	inv.SetServiceDate("A1", testNow)

	assert.Empty(t, PastServiceDateInventory(inv, testNow).Rows)
	assert.Len(t, PastServiceDateInventory(inv, testNow.Add(time.Second)).Rows, 1)
}

func TestDamagedInventory(t *testing.T) {
	rep := DamagedInventory(fixture())

	assert.Equal(t, DamagedInventoryFile, rep.File)
	// Descending price, unpriced last.
	assert.Equal(t, []string{"C3", "B2", "D4"}, ids(rep.Rows))
	assert.Equal(t, []string{"C3", "Acme", "Laptop", "450.5", "03/03/2019"}, rep.Rows[0])
}

func TestAllReports(t *testing.T) {
	reports := AllReports(fixture(), testNow)

	files := make([]string, 0, len(reports))
	for _, r := range reports {
		files = append(files, r.File)
	}
	assert.Equal(t, []string{
		FullInventoryFile,
		"LaptopInventory.csv",
		"PhoneInventory.csv",
		"LaptopInventory.csv",
		PastServiceDateInventoryFile,
		DamagedInventoryFile,
	}, files)
}

func TestComparePrice(t *testing.T) {
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)

	assert.Equal(t, 0, comparePrice(nil, nil))
	assert.Equal(t, -1, comparePrice(nil, &one))
	assert.Equal(t, 1, comparePrice(&one, nil))
	assert.Equal(t, -1, comparePrice(&one, &two))
	assert.Equal(t, 0, comparePrice(&one, &one))
}
