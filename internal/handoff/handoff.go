package handoff

import (
	"time"

	"github.com/dschabow91/maintrack/internal"
)

// Handoff is a shift-handoff note. Unlike work orders, reads are scoped:
// techs only see handoffs they created or that are assigned to their display
// name. AssignedTo is free text, matched case-sensitively against the
// authenticated name.
type Handoff struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	Title      string    `json:"title" gorm:"not null"`
	Notes      string    `json:"notes"`
	Priority   string    `json:"priority" gorm:"size:20;default:'Medium'"`
	Status     string    `json:"status" gorm:"size:20;default:'Open'"`
	DueDate    string    `json:"dueDate" gorm:"column:due_date;size:10"`
	AssignedTo string    `json:"assignedTo" gorm:"column:assigned_to"`
	OwnerID    string    `json:"ownerId" gorm:"column:owner_id;index;not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`
}

func (Handoff) TableName() string {
	return "handoffs"
}

const (
	StatusOpen     = "Open"
	StatusPickedUp = "Picked Up"
	StatusDone     = "Done"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusPickedUp, StatusDone:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// VisibleTo reports whether ident may see h: admins see everything, others
// see their own handoffs and ones assigned to their name.
func VisibleTo(h *Handoff, ident *internal.Identity) bool {
	if ident.IsAdmin() {
		return true
	}
	return h.OwnerID == ident.ID || h.AssignedTo == ident.Name
}

// Repository defines the data access methods for handoffs.
type Repository interface {
	Create(h *Handoff) error
	GetByID(id string) (*Handoff, error)
	List() ([]*Handoff, error)
	Update(h *Handoff) error
	// Delete is idempotent: removing an absent id is a no-op success.
	Delete(id string) error
}
