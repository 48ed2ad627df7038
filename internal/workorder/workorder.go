package workorder

import (
	"time"

	"gorm.io/datatypes"

	"github.com/dschabow91/maintrack/internal"
)

// WorkOrder is a unit of maintenance work. OwnerID is set at creation from
// the acting identity and never changes afterwards.
type WorkOrder struct {
	ID          string         `json:"id" gorm:"primaryKey;size:36"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	Asset       string         `json:"asset"`
	Location    string         `json:"location"`
	Priority    string         `json:"priority" gorm:"size:20"`
	AssignedTo  string         `json:"assignedTo" gorm:"column:assigned_to"`
	Status      string         `json:"status" gorm:"size:20"`
	DueDate     string         `json:"dueDate" gorm:"column:due_date;size:10"`
	OwnerID     string         `json:"ownerId" gorm:"column:owner_id;size:36;index"`
	Checklist   datatypes.JSON `json:"checklist" gorm:"type:json"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"-"`
}

func (WorkOrder) TableName() string {
	return "work_orders"
}

// Comment belongs to a work order and is owned by its author.
type Comment struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	WorkOrderID string    `json:"workOrderId" gorm:"column:work_order_id;size:36;index"`
	AuthorID    string    `json:"authorId" gorm:"column:author_id;size:36"`
	AuthorName  string    `json:"authorName" gorm:"column:author_name"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Comment) TableName() string {
	return "work_order_comments"
}

// Status values. There is no enforced transition graph: any identity allowed
// to update the record may set any status, including reopening a completed
// work order.
const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusOnHold     = "On Hold"
	StatusCompleted  = "Completed"
	StatusCanceled   = "Canceled"
)

const (
	PriorityLow      = "Low"
	PriorityMedium   = "Medium"
	PriorityHigh     = "High"
	PriorityCritical = "Critical"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusOnHold, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Overdue is computed at read time and never persisted. A work order with no
// due date is never overdue, nor is one that is completed or canceled.
func Overdue(wo *WorkOrder, now time.Time) bool {
	if wo.DueDate == "" {
		return false
	}
	if wo.Status == StatusCompleted || wo.Status == StatusCanceled {
		return false
	}
	due, err := internal.ParseDate(wo.DueDate)
	if err != nil {
		return false
	}
	return due.Before(now)
}

// View is the read projection carrying the derived overdue flag.
type View struct {
	*WorkOrder
	Overdue bool `json:"overdue"`
}

// Repository defines the data access methods for work orders and their
// comment sub-collection.
type Repository interface {
	Create(wo *WorkOrder) error
	GetByID(id string) (*WorkOrder, error)
	List() ([]*WorkOrder, error)
	Update(wo *WorkOrder) error
	// Delete is idempotent: removing an absent id is a no-op success.
	Delete(id string) error

	CreateComment(c *Comment) error
	GetComment(workOrderID, commentID string) (*Comment, error)
	ListComments(workOrderID string) ([]*Comment, error)
	DeleteComment(workOrderID, commentID string) error
}
