package storage

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/asset"
)

// AssetRepository implements asset.Repository using GORM with a
// single-writer lock over mutations.
type AssetRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

func NewAssetRepository(db *gorm.DB) asset.Repository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) Create(a *asset.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Create(a).Error
}

func (r *AssetRepository) GetByID(id string) (*asset.Asset, error) {
	var a asset.Asset
	err := r.db.Where("id = ?", id).First(&a).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrResourceNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *AssetRepository) List() ([]*asset.Asset, error) {
	var assets []*asset.Asset
	err := r.db.Order("name ASC").Find(&assets).Error
	return assets, err
}

func (r *AssetRepository) Update(a *asset.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.UpdatedAt = time.Now()
	return r.db.Save(a).Error
}

func (r *AssetRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.db.Where("id = ?", id).Delete(&asset.Asset{}).Error
}
