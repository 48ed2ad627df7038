package handoff

import (
	"github.com/dschabow91/maintrack/internal"
)

type CreateHandoffDTO struct {
	Title      string `json:"title"`
	Notes      string `json:"notes"`
	Priority   string `json:"priority"`
	DueDate    string `json:"dueDate"`
	AssignedTo string `json:"assignedTo"`
}

func (d *CreateHandoffDTO) Validate() error {
	if d.Title == "" {
		return internal.NewValidationError("title is required", internal.ErrCodeValidationFailed)
	}
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	if !ValidPriority(d.Priority) {
		return internal.NewValidationError("priority must be one of Low, Medium, High", internal.ErrCodeInvalidPriority)
	}
	if !internal.ValidDate(d.DueDate) {
		return internal.NewValidationError("dueDate must be YYYY-MM-DD", internal.ErrCodeValidationFailed)
	}
	return nil
}

// UpdateHandoffDTO carries the writable fields for partial updates. The
// pickup and done shortcuts go through the same path with only Status set.
type UpdateHandoffDTO struct {
	Title      *string `json:"title"`
	Notes      *string `json:"notes"`
	Priority   *string `json:"priority"`
	Status     *string `json:"status"`
	DueDate    *string `json:"dueDate"`
	AssignedTo *string `json:"assignedTo"`
}

func (d *UpdateHandoffDTO) Validate() error {
	if d.Title != nil && *d.Title == "" {
		return internal.NewValidationError("title cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.Priority != nil && !ValidPriority(*d.Priority) {
		return internal.NewValidationError("priority must be one of Low, Medium, High", internal.ErrCodeInvalidPriority)
	}
	if d.Status != nil && !ValidStatus(*d.Status) {
		return internal.NewValidationError("status must be one of Open, Picked Up, Done", internal.ErrCodeInvalidStatus)
	}
	if d.DueDate != nil && !internal.ValidDate(*d.DueDate) {
		return internal.NewValidationError("dueDate must be YYYY-MM-DD", internal.ErrCodeValidationFailed)
	}
	return nil
}

func (d *UpdateHandoffDTO) Apply(h *Handoff) {
	if d.Title != nil {
		h.Title = *d.Title
	}
	if d.Notes != nil {
		h.Notes = *d.Notes
	}
	if d.Priority != nil {
		h.Priority = *d.Priority
	}
	if d.Status != nil {
		h.Status = *d.Status
	}
	if d.DueDate != nil {
		h.DueDate = *d.DueDate
	}
	if d.AssignedTo != nil {
		h.AssignedTo = *d.AssignedTo
	}
}
