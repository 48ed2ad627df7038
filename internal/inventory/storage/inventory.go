package storage

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/inventory"
)

// ItemRepository implements inventory.Repository using GORM with a
// single-writer lock over mutations.
type ItemRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewItemRepository(db *gorm.DB) inventory.Repository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Create(item).Error
}

func (r *ItemRepository) GetByID(id string) (*inventory.Item, error) {
	var item inventory.Item
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItemRepository) List() ([]*inventory.Item, error) {
	var items []*inventory.Item
	err := r.db.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *ItemRepository) Update(item *inventory.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.UpdatedAt = time.Now()
	return r.db.Save(item).Error
}

func (r *ItemRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Where("id = ?", id).Delete(&inventory.Item{}).Error
}
