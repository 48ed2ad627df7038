package template

import (
	"time"

	"gorm.io/datatypes"
)

// WorkOrderTemplate is a reusable work-order blueprint. The payload is an
// opaque JSON document shaped like a work order; the server never interprets
// it. CRUD is admin-only but any authenticated user may read templates.
type WorkOrderTemplate struct {
	ID        string         `json:"id" gorm:"primaryKey;size:36"`
	Name      string         `json:"name" gorm:"not null"`
	Payload   datatypes.JSON `json:"payload" gorm:"type:json"`
	OwnerID   string         `json:"ownerId" gorm:"column:owner_id;index;not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
}

func (WorkOrderTemplate) TableName() string {
	return "work_order_templates"
}

// Repository defines the data access methods for work order templates.
type Repository interface {
	Create(t *WorkOrderTemplate) error
	GetByID(id string) (*WorkOrderTemplate, error)
	List() ([]*WorkOrderTemplate, error)
	Update(t *WorkOrderTemplate) error
	// Delete is idempotent: removing an absent id is a no-op success.
	Delete(id string) error
}
