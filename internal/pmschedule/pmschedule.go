package pmschedule

import (
	"time"

	"github.com/dschabow91/maintrack/internal"
)

// Schedule is a recurring preventive-maintenance task. The whole kind is
// admin-owned: create, update and delete all require the admin role.
type Schedule struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Asset     string    `json:"asset" gorm:"not null"`
	Task      string    `json:"task" gorm:"not null"`
	StartDate string    `json:"startDate" gorm:"column:start_date;size:10"`
	Frequency string    `json:"frequency" gorm:"size:20"`
	Interval  int       `json:"interval" gorm:"not null;default:1"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (Schedule) TableName() string {
	return "pm_schedules"
}

const (
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
)

func ValidFrequency(f string) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}

var errInvalidSchedule = internal.NewValidationError("interval must be >= 1 and frequency one of Daily, Weekly, Monthly", internal.ErrCodeInvalidSchedule)

// NextDue projects the next due date: the earliest startDate + k*step that is
// not before now, stepping one interval at a time. A start date in the future
// is returned unchanged. Monthly steps use calendar-month arithmetic, not
// fixed 30-day blocks.
func NextDue(startDate, frequency string, interval int, now time.Time) (time.Time, error) {
	if interval < 1 || !ValidFrequency(frequency) {
		return time.Time{}, errInvalidSchedule
	}

	start, err := internal.ParseDate(startDate)
	if err != nil {
		return time.Time{}, internal.NewValidationError("startDate must be YYYY-MM-DD", internal.ErrCodeInvalidSchedule)
	}

	next := start
	for next.Before(now) {
		switch frequency {
		case FrequencyDaily:
			next = next.AddDate(0, 0, interval)
		case FrequencyWeekly:
			next = next.AddDate(0, 0, 7*interval)
		case FrequencyMonthly:
			next = next.AddDate(0, interval, 0)
		}
	}
	return next, nil
}

// View is the read projection carrying the derived next due date.
type View struct {
	*Schedule
	NextDue string `json:"nextDue"`
}

// Repository defines the data access methods for PM schedules.
type Repository interface {
	Create(s *Schedule) error
	GetByID(id string) (*Schedule, error)
	List() ([]*Schedule, error)
	Update(s *Schedule) error
	// Delete is idempotent: removing an absent id is a no-op success.
	Delete(id string) error
}
