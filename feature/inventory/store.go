package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemModel is the persisted form of a Record.
type ItemModel struct {
	ItemID       string              `gorm:"column:item_id;primaryKey;size:191"`
	Manufacturer string              `gorm:"column:manufacturer;size:255"`
	ItemType     string              `gorm:"column:item_type;size:255;index"`
	Damaged      string              `gorm:"column:damaged;size:255"`
	Price        decimal.NullDecimal `gorm:"column:price;type:decimal(18,6)"`
	ServiceDate  *time.Time          `gorm:"column:service_date"`
	SnapshotAt   time.Time           `gorm:"column:snapshot_at"`
}

func (ItemModel) TableName() string {
	return "inventory_items"
}

// Store persists inventory snapshots through GORM.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on an open connection.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the inventory_items table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&ItemModel{}); err != nil {
		return fmt.Errorf("failed to migrate inventory_items: %w", err)
	}
	return nil
}

// SaveSnapshot upserts records keyed by item id.
func (s *Store) SaveSnapshot(ctx context.Context, records []Record, at time.Time) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	models := make([]ItemModel, 0, len(records))
	for _, r := range records {
		m := ItemModel{
			ItemID:       r.ID,
			Manufacturer: r.Manufacturer,
			ItemType:     r.ItemType,
			Damaged:      r.Damaged,
			ServiceDate:  r.ServiceDate,
			SnapshotAt:   at,
		}
		if r.Price != nil {
			m.Price = decimal.NewNullDecimal(*r.Price)
		}
		models = append(models, m)
	}

	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&models)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to save snapshot: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// Items returns the persisted items ordered by id.
func (s *Store) Items(ctx context.Context) ([]ItemModel, error) {
	var items []ItemModel
	if err := s.db.WithContext(ctx).Order("item_id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory_items: %w", err)
	}
	return items, nil
}
