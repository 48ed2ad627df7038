package workorder

import (
	"strings"

	"gorm.io/datatypes"

	"github.com/dschabow91/maintrack/internal"
)

// CreateWorkOrderDTO is the request payload for creating a work order.
type CreateWorkOrderDTO struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Asset       string         `json:"asset"`
	Location    string         `json:"location"`
	Priority    string         `json:"priority"`
	AssignedTo  string         `json:"assignedTo"`
	Status      string         `json:"status"`
	DueDate     string         `json:"dueDate"`
	Checklist   datatypes.JSON `json:"checklist"`
}

func (d *CreateWorkOrderDTO) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return internal.NewValidationError("title is required", internal.ErrCodeValidationFailed)
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if !ValidPriority(d.Priority) {
		return internal.NewValidationError("unrecognized priority", internal.ErrCodeInvalidPriority)
	}
	if d.Status == "" {
		d.Status = StatusOpen
	}
	if !ValidStatus(d.Status) {
		return internal.NewValidationError("unrecognized status", internal.ErrCodeInvalidStatus)
	}
	if !internal.ValidDate(d.DueDate) {
		return internal.NewValidationError("dueDate must be YYYY-MM-DD", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateWorkOrderDTO is the allow-list of mutable work-order fields. Nil
// pointers are left untouched; id, ownerId and createdAt are not listed and
// therefore can never be overwritten by a caller.
type UpdateWorkOrderDTO struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Asset       *string         `json:"asset"`
	Location    *string         `json:"location"`
	Priority    *string         `json:"priority"`
	AssignedTo  *string         `json:"assignedTo"`
	Status      *string         `json:"status"`
	DueDate     *string         `json:"dueDate"`
	Checklist   *datatypes.JSON `json:"checklist"`
}

func (d UpdateWorkOrderDTO) Validate() error {
	if d.Title != nil && strings.TrimSpace(*d.Title) == "" {
		return internal.NewValidationError("title cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.Priority != nil && !ValidPriority(*d.Priority) {
		return internal.NewValidationError("unrecognized priority", internal.ErrCodeInvalidPriority)
	}
	if d.Status != nil && !ValidStatus(*d.Status) {
		return internal.NewValidationError("unrecognized status", internal.ErrCodeInvalidStatus)
	}
	if d.DueDate != nil && !internal.ValidDate(*d.DueDate) {
		return internal.NewValidationError("dueDate must be YYYY-MM-DD", internal.ErrCodeValidationFailed)
	}
	return nil
}

// Apply merges the set fields onto the record.
func (d UpdateWorkOrderDTO) Apply(wo *WorkOrder) {
	if d.Title != nil {
		wo.Title = *d.Title
	}
	if d.Description != nil {
		wo.Description = *d.Description
	}
	if d.Asset != nil {
		wo.Asset = *d.Asset
	}
	if d.Location != nil {
		wo.Location = *d.Location
	}
	if d.Priority != nil {
		wo.Priority = *d.Priority
	}
	if d.AssignedTo != nil {
		wo.AssignedTo = *d.AssignedTo
	}
	if d.Status != nil {
		wo.Status = *d.Status
	}
	if d.DueDate != nil {
		wo.DueDate = *d.DueDate
	}
	if d.Checklist != nil {
		wo.Checklist = *d.Checklist
	}
}

// CreateCommentDTO is the request payload for commenting on a work order.
type CreateCommentDTO struct {
	Text string `json:"text"`
}

func (d CreateCommentDTO) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return internal.NewValidationError("text is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
