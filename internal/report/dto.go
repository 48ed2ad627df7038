package report

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/dschabow91/maintrack/internal"
)

type CreateReportDTO struct {
	Date           string   `json:"date"`
	Shift          string   `json:"shift"`
	TasksCompleted string   `json:"tasksCompleted"`
	Issues         string   `json:"issues"`
	PartsUsed      string   `json:"partsUsed"`
	Hours          float64  `json:"hours"`
	NextDayNotes   string   `json:"nextDayNotes"`
	ImageURLs      []string `json:"imageUrls"`
}

func (d *CreateReportDTO) Validate() error {
	if d.Date == "" {
		return internal.NewValidationError("date is required", internal.ErrCodeValidationFailed)
	}
	if !internal.ValidDate(d.Date) {
		return internal.NewValidationError("date must be YYYY-MM-DD", internal.ErrCodeValidationFailed)
	}
	if d.Hours < 0 {
		return internal.NewValidationError("hours cannot be negative", internal.ErrCodeInvalidHours)
	}
	return nil
}

func (d *CreateReportDTO) ImageURLsJSON() datatypes.JSON {
	urls := d.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	raw, _ := json.Marshal(urls)
	return datatypes.JSON(raw)
}

// UpdateReportDTO carries the writable fields for partial updates.
type UpdateReportDTO struct {
	Date           *string   `json:"date"`
	Shift          *string   `json:"shift"`
	TasksCompleted *string   `json:"tasksCompleted"`
	Issues         *string   `json:"issues"`
	PartsUsed      *string   `json:"partsUsed"`
	Hours          *float64  `json:"hours"`
	NextDayNotes   *string   `json:"nextDayNotes"`
	ImageURLs      *[]string `json:"imageUrls"`
}

func (d *UpdateReportDTO) Validate() error {
	if d.Date != nil && !internal.ValidDate(*d.Date) {
		return internal.NewValidationError("date must be YYYY-MM-DD", internal.ErrCodeValidationFailed)
	}
	if d.Hours != nil && *d.Hours < 0 {
		return internal.NewValidationError("hours cannot be negative", internal.ErrCodeInvalidHours)
	}
	return nil
}

func (d *UpdateReportDTO) Apply(r *DailyReport) {
	if d.Date != nil {
		r.Date = *d.Date
	}
	if d.Shift != nil {
		r.Shift = *d.Shift
	}
	if d.TasksCompleted != nil {
		r.TasksCompleted = *d.TasksCompleted
	}
	if d.Issues != nil {
		r.Issues = *d.Issues
	}
	if d.PartsUsed != nil {
		r.PartsUsed = *d.PartsUsed
	}
	if d.Hours != nil {
		r.Hours = *d.Hours
	}
	if d.NextDayNotes != nil {
		r.NextDayNotes = *d.NextDayNotes
	}
	if d.ImageURLs != nil {
		raw, _ := json.Marshal(*d.ImageURLs)
		r.ImageURLs = datatypes.JSON(raw)
	}
}
