package handoff

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

// List returns the handoffs visible to ident. Filtering happens here, not in
// the store, so the visibility rule lives in exactly one place.
func (s *Service) List(ident *internal.Identity) ([]*Handoff, error) {
	handoffs, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	visible := make([]*Handoff, 0, len(handoffs))
	for _, h := range handoffs {
		if VisibleTo(h, ident) {
			visible = append(visible, h)
		}
	}
	return visible, nil
}

func (s *Service) Get(ident *internal.Identity, id string) (*Handoff, error) {
	h, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !VisibleTo(h, ident) {
		// Hidden handoffs look absent rather than forbidden.
		return nil, internal.ErrResourceNotFound
	}
	return h, nil
}

func (s *Service) Create(ident *internal.Identity, dto CreateHandoffDTO) (*Handoff, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	h := &Handoff{
		ID:         uuid.NewString(),
		Title:      dto.Title,
		Notes:      dto.Notes,
		Priority:   dto.Priority,
		Status:     StatusOpen,
		DueDate:    dto.DueDate,
		AssignedTo: dto.AssignedTo,
		OwnerID:    ident.ID,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(h); err != nil {
		s.logger.Error("failed to create handoff", "error", err)
		return nil, err
	}

	s.logger.Info("handoff created", "handoff_id", h.ID, "owner_id", h.OwnerID)
	return h, nil
}

func (s *Service) Update(ident *internal.Identity, id string, dto UpdateHandoffDTO) (*Handoff, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	h, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !ident.CanModify(h.OwnerID) {
		return nil, internal.ErrNotOwner
	}

	dto.Apply(h)
	if err := s.repo.Update(h); err != nil {
		s.logger.Error("failed to update handoff", "handoff_id", id, "error", err)
		return nil, err
	}
	return h, nil
}

// Pickup marks the handoff picked up by the caller. It is an ordinary status
// update wearing a shorter name.
func (s *Service) Pickup(ident *internal.Identity, id string) (*Handoff, error) {
	status := StatusPickedUp
	return s.Update(ident, id, UpdateHandoffDTO{Status: &status})
}

// Done marks the handoff completed.
func (s *Service) Done(ident *internal.Identity, id string) (*Handoff, error) {
	status := StatusDone
	return s.Update(ident, id, UpdateHandoffDTO{Status: &status})
}

func (s *Service) Delete(ident *internal.Identity, id string) error {
	h, err := s.repo.GetByID(id)
	if err != nil {
		if err == internal.ErrResourceNotFound {
			return nil
		}
		return err
	}
	if !ident.CanModify(h.OwnerID) {
		return internal.ErrNotOwner
	}
	return s.repo.Delete(id)
}
