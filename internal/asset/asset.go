package asset

import "time"

// Asset is a piece of equipment under maintenance. Assets carry no per-record
// owner; every mutation is admin-gated regardless of who created the record.
type Asset struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Criticality string    `json:"criticality" gorm:"size:20"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"-"`
}

func (Asset) TableName() string {
	return "assets"
}

const (
	CriticalityLow      = "Low"
	CriticalityMedium   = "Medium"
	CriticalityHigh     = "High"
	CriticalityCritical = "Critical"
)

func ValidCriticality(c string) bool {
	switch c {
	case "", CriticalityLow, CriticalityMedium, CriticalityHigh, CriticalityCritical:
		return true
	}
	return false
}

// Repository defines the data access methods for assets.
type Repository interface {
	Create(a *Asset) error
	GetByID(id string) (*Asset, error)
	List() ([]*Asset, error)
	Update(a *Asset) error
	// Delete is idempotent: removing an absent id is a no-op success.
	Delete(id string) error
}
