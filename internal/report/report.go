package report

import (
	"time"

	"gorm.io/datatypes"
)

// DailyReport is an end-of-shift report. Reads are scoped: admins see every
// report, others only their own. OwnerName is denormalized at creation from
// the token snapshot.
type DailyReport struct {
	ID             string         `json:"id" gorm:"primaryKey;size:36"`
	Date           string         `json:"date" gorm:"size:10;index"`
	Shift          string         `json:"shift" gorm:"size:20"`
	TasksCompleted string         `json:"tasksCompleted" gorm:"column:tasks_completed"`
	Issues         string         `json:"issues"`
	PartsUsed      string         `json:"partsUsed" gorm:"column:parts_used"`
	Hours          float64        `json:"hours"`
	NextDayNotes   string         `json:"nextDayNotes" gorm:"column:next_day_notes"`
	ImageURLs      datatypes.JSON `json:"imageUrls" gorm:"column:image_urls;type:json"`
	OwnerID        string         `json:"ownerId" gorm:"column:owner_id;index;not null"`
	OwnerName      string         `json:"ownerName" gorm:"column:owner_name"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"-"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}

// Repository defines the data access methods for daily reports. Scoping and
// the date filter are pushed down so listing stays a single query.
type Repository interface {
	Create(r *DailyReport) error
	GetByID(id string) (*DailyReport, error)
	List(ownerID, date string) ([]*DailyReport, error)
	Update(r *DailyReport) error
	// Delete is idempotent: removing an absent id is a no-op success.
	Delete(id string) error
}
