package template

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dschabow91/maintrack/internal"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *Service) List() ([]*WorkOrderTemplate, error) {
	return s.repo.List()
}

func (s *Service) Get(id string) (*WorkOrderTemplate, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(ident *internal.Identity, dto CreateTemplateDTO) (*WorkOrderTemplate, error) {
	if !ident.IsAdmin() {
		return nil, internal.ErrAdminOnly
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t := &WorkOrderTemplate{
		ID:        uuid.NewString(),
		Name:      dto.Name,
		Payload:   []byte(dto.Payload),
		OwnerID:   ident.ID,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to create work order template", "error", err)
		return nil, err
	}

	s.logger.Info("work order template created", "template_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *Service) Update(ident *internal.Identity, id string, dto UpdateTemplateDTO) (*WorkOrderTemplate, error) {
	if !ident.IsAdmin() {
		return nil, internal.ErrAdminOnly
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	dto.Apply(t)
	if err := s.repo.Update(t); err != nil {
		s.logger.Error("failed to update work order template", "template_id", id, "error", err)
		return nil, err
	}
	return t, nil
}

func (s *Service) Delete(ident *internal.Identity, id string) error {
	if !ident.IsAdmin() {
		return internal.ErrAdminOnly
	}
	return s.repo.Delete(id)
}
