package pmschedule

import (
	"github.com/dschabow91/maintrack/internal"
)

type CreateScheduleDTO struct {
	Asset     string `json:"asset"`
	Task      string `json:"task"`
	StartDate string `json:"startDate"`
	Frequency string `json:"frequency"`
	Interval  int    `json:"interval"`
}

func (d *CreateScheduleDTO) Validate() error {
	if d.Asset == "" {
		return internal.NewValidationError("asset is required", internal.ErrCodeValidationFailed)
	}
	if d.Task == "" {
		return internal.NewValidationError("task is required", internal.ErrCodeValidationFailed)
	}
	if d.Frequency == "" {
		d.Frequency = FrequencyWeekly
	}
	if d.Interval == 0 {
		d.Interval = 1
	}
	if d.Interval < 1 || !ValidFrequency(d.Frequency) {
		return errInvalidSchedule
	}
	if !internal.ValidDate(d.StartDate) {
		return internal.NewValidationError("startDate must be YYYY-MM-DD", internal.ErrCodeInvalidSchedule)
	}
	return nil
}

// UpdateScheduleDTO carries the writable fields for partial updates. Fields
// left nil are untouched; unknown fields are rejected at decode time.
type UpdateScheduleDTO struct {
	Asset     *string `json:"asset"`
	Task      *string `json:"task"`
	StartDate *string `json:"startDate"`
	Frequency *string `json:"frequency"`
	Interval  *int    `json:"interval"`
}

func (d *UpdateScheduleDTO) Validate() error {
	if d.Asset != nil && *d.Asset == "" {
		return internal.NewValidationError("asset cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.Task != nil && *d.Task == "" {
		return internal.NewValidationError("task cannot be empty", internal.ErrCodeValidationFailed)
	}
	if d.Frequency != nil && !ValidFrequency(*d.Frequency) {
		return errInvalidSchedule
	}
	if d.Interval != nil && *d.Interval < 1 {
		return errInvalidSchedule
	}
	if d.StartDate != nil && !internal.ValidDate(*d.StartDate) {
		return internal.NewValidationError("startDate must be YYYY-MM-DD", internal.ErrCodeInvalidSchedule)
	}
	return nil
}

func (d *UpdateScheduleDTO) Apply(s *Schedule) {
	if d.Asset != nil {
		s.Asset = *d.Asset
	}
	if d.Task != nil {
		s.Task = *d.Task
	}
	if d.StartDate != nil {
		s.StartDate = *d.StartDate
	}
	if d.Frequency != nil {
		s.Frequency = *d.Frequency
	}
	if d.Interval != nil {
		s.Interval = *d.Interval
	}
}
