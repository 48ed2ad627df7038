package storage

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/workorder"
)

// WorkOrderRepository implements workorder.Repository using GORM. Mutations
// on the kind are serialized by a single-writer lock; last writer wins.
type WorkOrderRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewWorkOrderRepository(db *gorm.DB) workorder.Repository {
	return &WorkOrderRepository{db: db}
}

func (r *WorkOrderRepository) Create(wo *workorder.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Create(wo).Error
}

func (r *WorkOrderRepository) GetByID(id string) (*workorder.WorkOrder, error) {
	var wo workorder.WorkOrder
	err := r.db.Where("id = ?", id).First(&wo).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &wo, nil
}

func (r *WorkOrderRepository) List() ([]*workorder.WorkOrder, error) {
	var orders []*workorder.WorkOrder
	err := r.db.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *WorkOrderRepository) Update(wo *workorder.WorkOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	wo.UpdatedAt = time.Now()
	return r.db.Save(wo).Error
}

func (r *WorkOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// comments go with their work order; a missing id deletes zero rows
	if err := r.db.Where("work_order_id = ?", id).Delete(&workorder.Comment{}).Error; err != nil {
		return err
	}
	return r.db.Where("id = ?", id).Delete(&workorder.WorkOrder{}).Error
}

func (r *WorkOrderRepository) CreateComment(c *workorder.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Create(c).Error
}

func (r *WorkOrderRepository) GetComment(workOrderID, commentID string) (*workorder.Comment, error) {
	var c workorder.Comment
	err := r.db.Where("id = ? AND work_order_id = ?", commentID, workOrderID).First(&c).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *WorkOrderRepository) ListComments(workOrderID string) ([]*workorder.Comment, error) {
	var comments []*workorder.Comment
	err := r.db.Where("work_order_id = ?", workOrderID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *WorkOrderRepository) DeleteComment(workOrderID, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Where("id = ? AND work_order_id = ?", commentID, workOrderID).
		Delete(&workorder.Comment{}).Error
}
