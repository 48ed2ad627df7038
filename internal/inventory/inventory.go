package inventory

import "time"

// Item is a stocked part. Creation and deletion are admin-only; quantity
// updates are open to any authenticated identity so techs can log
// consumption from the floor.
type Item struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	SKU       string    `json:"sku" gorm:"column:sku"`
	Qty       int       `json:"qty" gorm:"not null;default:0"`
	Min       int       `json:"min" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Item) TableName() string {
	return "inventory_items"
}

// LowStock is computed at read time, never persisted. The boundary is
// inclusive: qty == min counts as low.
func LowStock(item *Item) bool {
	return item.Qty <= item.Min
}

// View is the read projection carrying the derived low-stock flag.
type View struct {
	*Item
	LowStock bool `json:"lowStock"`
}

// Repository defines the data access methods for inventory items.
type Repository interface {
	Create(item *Item) error
	GetByID(id string) (*Item, error)
	List() ([]*Item, error)
	Update(item *Item) error
	// Delete is idempotent: removing an absent id is a no-op success.
	Delete(id string) error
}
