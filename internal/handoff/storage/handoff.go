package storage

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/handoff"
)

// HandoffRepository implements handoff.Repository using GORM with a
// single-writer lock over mutations.
type HandoffRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewHandoffRepository(db *gorm.DB) handoff.Repository {
	return &HandoffRepository{db: db}
}

func (r *HandoffRepository) Create(h *handoff.Handoff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Create(h).Error
}

func (r *HandoffRepository) GetByID(id string) (*handoff.Handoff, error) {
	var h handoff.Handoff
	err := r.db.Where("id = ?", id).First(&h).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &h, nil
}

func (r *HandoffRepository) List() ([]*handoff.Handoff, error) {
	var handoffs []*handoff.Handoff
	err := r.db.Order("created_at DESC").Find(&handoffs).Error
	return handoffs, err
}

func (r *HandoffRepository) Update(h *handoff.Handoff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.UpdatedAt = time.Now()
	return r.db.Save(h).Error
}

func (r *HandoffRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Where("id = ?", id).Delete(&handoff.Handoff{}).Error
}
