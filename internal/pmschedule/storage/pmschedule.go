package storage

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/pmschedule"
)

// ScheduleRepository implements pmschedule.Repository using GORM with a
// single-writer lock over mutations.
type ScheduleRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewScheduleRepository(db *gorm.DB) pmschedule.Repository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) Create(s *pmschedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Create(s).Error
}

func (r *ScheduleRepository) GetByID(id string) (*pmschedule.Schedule, error) {
	var s pmschedule.Schedule
	err := r.db.Where("id = ?", id).First(&s).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepository) List() ([]*pmschedule.Schedule, error) {
	var schedules []*pmschedule.Schedule
	err := r.db.Order("asset ASC").Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepository) Update(s *pmschedule.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.UpdatedAt = time.Now()
	return r.db.Save(s).Error
}

func (r *ScheduleRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Where("id = ?", id).Delete(&pmschedule.Schedule{}).Error
}
