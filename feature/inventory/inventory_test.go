package inventory

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventory_Put(t *testing.T) {
	inv := New()
	inv.Put(Record{ID: "A1", Manufacturer: "Acme", ItemType: "laptop"})
	inv.Put(Record{ID: "B2", Manufacturer: "Bolt", ItemType: "phone"})

	require.True(t, inv.SetPrice("A1", decimal.RequireFromString("10")))

	// Re-adding keeps position but resets the record.
	inv.Put(Record{ID: "A1", Manufacturer: "Apex", ItemType: "tower"})

	assert.Equal(t, 2, inv.Len())
	records := inv.Records()
	assert.Equal(t, "A1", records[0].ID)
	assert.Equal(t, "Apex", records[0].Manufacturer)
	assert.Nil(t, records[0].Price)
	assert.Equal(t, "B2", records[1].ID)
}

func TestInventory_Setters(t *testing.T) {
	inv := New()
	inv.Put(Record{ID: "A1"})

	date := time.Date(2020, 1, 1, 0, 0, 0, 0, time.Local)
	assert.True(t, inv.SetPrice("A1", decimal.RequireFromString("999.99")))
	assert.True(t, inv.SetServiceDate("A1", date))
	assert.False(t, inv.SetPrice("ZZ", decimal.Zero))
	assert.False(t, inv.SetServiceDate("ZZ", date))

	rec, ok := inv.Get("A1")
	require.True(t, ok)
	assert.Equal(t, "999.99", rec.PriceString())
	assert.Equal(t, "01/01/2020", rec.ServiceDateString())

	_, ok = inv.Get("ZZ")
	assert.False(t, ok)
	assert.Equal(t, 1, inv.Len())
}

func TestInventory_RecordsAreCopies(t *testing.T) {
	inv := New()
	inv.Put(Record{ID: "A1", Manufacturer: "Acme"})

	records := inv.Records()
	records[0].Manufacturer = "changed"

	rec, _ := inv.Get("A1")
	assert.Equal(t, "Acme", rec.Manufacturer)
}

func TestRecord_Formatting(t *testing.T) {
	var r Record
	assert.Equal(t, "", r.PriceString())
	assert.Equal(t, "", r.ServiceDateString())
	assert.Equal(t, "", r.DamagedMarker())
	assert.False(t, r.IsDamaged())

	r.Damaged = "yes"
	assert.True(t, r.IsDamaged())
	assert.Equal(t, "damaged", r.DamagedMarker())
}

func TestRecord_PriceString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"199", "199.0"},
		{"0", "0.0"},
		{"1e3", "1000.0"},
		{"-5", "-5.0"},
		{"12.50", "12.5"},
		{"1000.00", "1000.0"},
		{"999.99", "999.99"},
		{"1.5e-2", "0.015"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			price := decimal.RequireFromString(tt.in)
			assert.Equal(t, tt.want, Record{Price: &price}.PriceString())
		})
	}
}
