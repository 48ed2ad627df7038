package storage

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/template"
)

// TemplateRepository implements template.Repository using GORM with a
// single-writer lock over mutations.
type TemplateRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewTemplateRepository(db *gorm.DB) template.Repository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) Create(t *template.WorkOrderTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Create(t).Error
}

func (r *TemplateRepository) GetByID(id string) (*template.WorkOrderTemplate, error) {
	var t template.WorkOrderTemplate
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepository) List() ([]*template.WorkOrderTemplate, error) {
	var templates []*template.WorkOrderTemplate
	err := r.db.Order("created_at DESC").Find(&templates).Error
	return templates, err
}

func (r *TemplateRepository) Update(t *template.WorkOrderTemplate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.UpdatedAt = time.Now()
	return r.db.Save(t).Error
}

func (r *TemplateRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Where("id = ?", id).Delete(&template.WorkOrderTemplate{}).Error
}
