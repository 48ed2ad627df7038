package asset

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dschabow91/maintrack/internal"
)

// Service handles asset business logic. Reads are open to any authenticated
// identity; every mutation requires the admin role.
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

func (s *Service) List() ([]*Asset, error) {
	assets, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list assets", "error", err)
		return nil, internal.NewInternalError("failed to list assets", err)
	}
	return assets, nil
}

func (s *Service) Create(ident *internal.Identity, dto CreateAssetDTO) (*Asset, error) {
	if !ident.IsAdmin() {
		s.logger.Warn("asset create denied", "user_id", ident.ID, "role", ident.Role)
		return nil, internal.ErrAdminOnly
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	a := &Asset{
		ID:          uuid.NewString(),
		Name:        dto.Name,
		Category:    dto.Category,
		Location:    dto.Location,
		Criticality: dto.Criticality,
		Notes:       dto.Notes,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(a); err != nil {
		s.logger.Error("failed to create asset", "error", err)
		return nil, internal.NewInternalError("failed to create asset", err)
	}

	s.logger.Info("asset created", "asset_id", a.ID, "name", a.Name)
	return a, nil
}

func (s *Service) Update(ident *internal.Identity, id string, dto UpdateAssetDTO) error {
	if !ident.IsAdmin() {
		s.logger.Warn("asset update denied", "user_id", ident.ID, "role", ident.Role)
		return internal.ErrAdminOnly
	}
	if err := dto.Validate(); err != nil {
		return err
	}

	a, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}

	dto.Apply(a)
	if err := s.repo.Update(a); err != nil {
		s.logger.Error("failed to update asset", "error", err, "asset_id", id)
		return internal.NewInternalError("failed to update asset", err)
	}
	return nil
}

// Delete removes an asset, admin-only. Deleting an absent id succeeds.
func (s *Service) Delete(ident *internal.Identity, id string) error {
	if !ident.IsAdmin() {
		s.logger.Warn("asset delete denied", "user_id", ident.ID, "role", ident.Role)
		return internal.ErrAdminOnly
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete asset", "error", err, "asset_id", id)
		return internal.NewInternalError("failed to delete asset", err)
	}
	return nil
}
