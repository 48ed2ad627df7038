package inventory

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dschabow91/maintrack/internal"
)

// Service handles inventory business logic. Create and delete are
// admin-gated; updates, including the quick +1/-1 consumption flow, are open
// to any authenticated identity.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List returns every item with the derived low-stock flag attached.
func (s *Service) List() ([]View, error) {
	items, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list inventory", "error", err)
		return nil, internal.NewInternalError("failed to list inventory", err)
	}

	views := make([]View, len(items))
	for i, item := range items {
		views[i] = View{Item: item, LowStock: LowStock(item)}
	}
	return views, nil
}

func (s *Service) Create(ident *internal.Identity, dto CreateItemDTO) (*Item, error) {
	if !ident.IsAdmin() {
		s.logger.Warn("inventory create denied", "user_id", ident.ID, "role", ident.Role)
		return nil, internal.ErrAdminOnly
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	item := &Item{
		ID:   uuid.NewString(),
		Name: dto.Name,
		SKU:  dto.SKU,
		Qty:  dto.Qty,
		Min:  dto.Min,
	}

	if err := s.repo.Create(item); err != nil {
		s.logger.Error("failed to create inventory item", "error", err)
		return nil, internal.NewInternalError("failed to create inventory item", err)
	}

	s.logger.Info("inventory item created", "item_id", item.ID, "sku", item.SKU)
	return item, nil
}

// Update merges the allow-listed fields. Any authenticated identity may
// update quantities, so no ownership or role check applies here.
func (s *Service) Update(id string, dto UpdateItemDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	dto.Apply(item)
	if err := s.repo.Update(item); err != nil {
		s.logger.Error("failed to update inventory item", "error", err, "item_id", id)
		return internal.NewInternalError("failed to update inventory item", err)
	}
	return nil
}

// Delete removes an item, admin-only. Deleting an absent id succeeds.
func (s *Service) Delete(ident *internal.Identity, id string) error {
	if !ident.IsAdmin() {
		s.logger.Warn("inventory delete denied", "user_id", ident.ID, "role", ident.Role)
		return internal.ErrAdminOnly
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete inventory item", "error", err, "item_id", id)
		return internal.NewInternalError("failed to delete inventory item", err)
	}
	return nil
}
