package storage

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/report"
)

// ReportRepository implements report.Repository using GORM with a
// single-writer lock over mutations.
type ReportRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewReportRepository(db *gorm.DB) report.Repository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) Create(rep *report.DailyReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Create(rep).Error
}

func (r *ReportRepository) GetByID(id string) (*report.DailyReport, error) {
	var rep report.DailyReport
	err := r.db.Where("id = ?", id).First(&rep).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &rep, nil
}

// List filters by owner and date when either is non-empty.
func (r *ReportRepository) List(ownerID, date string) ([]*report.DailyReport, error) {
	query := r.db.Order("created_at DESC")
	if ownerID != "" {
		query = query.Where("owner_id = ?", ownerID)
	}
	if date != "" {
		query = query.Where("date = ?", date)
	}

	var reports []*report.DailyReport
	err := query.Find(&reports).Error
	return reports, err
}

func (r *ReportRepository) Update(rep *report.DailyReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep.UpdatedAt = time.Now()
	return r.db.Save(rep).Error
}

func (r *ReportRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Where("id = ?", id).Delete(&report.DailyReport{}).Error
}
