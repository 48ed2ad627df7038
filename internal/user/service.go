package user

import (
	"log/slog"

	"github.com/dschabow91/maintrack/internal"
)

// Service handles user listing business logic. Account creation and
// credential changes live in the auth service.
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

// ListUsers returns every account, admin-only.
func (s *Service) ListUsers(ident *internal.Identity) ([]View, error) {
	if !ident.IsAdmin() {
		s.logger.Warn("user listing denied", "user_id", ident.ID, "role", ident.Role)
		return nil, internal.ErrAdminOnly
	}

	users, err := s.repo.List()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, internal.NewInternalError("failed to list users", err)
	}

	views := make([]View, len(users))
	for i, u := range users {
		views[i] = u.ToView()
	}
	return views, nil
}

// Directory returns the technician directory, visible to any authenticated
// identity.
func (s *Service) Directory() ([]DirectoryEntry, error) {
	techs, err := s.repo.ListByRole(internal.RoleTech)
	if err != nil {
		s.logger.Error("failed to list technicians", "error", err)
		return nil, internal.NewInternalError("failed to list technicians", err)
	}

	entries := make([]DirectoryEntry, len(techs))
	for i, u := range techs {
		entries[i] = DirectoryEntry{
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		}
	}
	return entries, nil
}
