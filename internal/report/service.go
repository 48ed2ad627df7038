package report

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

// List returns reports scoped to ident: everything for admins, own records
// otherwise. An optional date narrows the result to that day.
func (s *Service) List(ident *internal.Identity, date string) ([]*DailyReport, error) {
	ownerID := ident.ID
	if ident.IsAdmin() {
		ownerID = ""
	}
	return s.repo.List(ownerID, date)
}

func (s *Service) Get(ident *internal.Identity, id string) (*DailyReport, error) {
	r, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !ident.IsAdmin() && r.OwnerID != ident.ID {
		return nil, internal.ErrResourceNotFound
	}
	return r, nil
}

func (s *Service) Create(ident *internal.Identity, dto CreateReportDTO) (*DailyReport, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	r := &DailyReport{
		ID:             uuid.NewString(),
		Date:           dto.Date,
		Shift:          dto.Shift,
		TasksCompleted: dto.TasksCompleted,
		Issues:         dto.Issues,
		PartsUsed:      dto.PartsUsed,
		Hours:          dto.Hours,
		NextDayNotes:   dto.NextDayNotes,
		ImageURLs:      dto.ImageURLsJSON(),
		OwnerID:        ident.ID,
		OwnerName:      ident.Name,
		CreatedAt:      s.now(),
	}
	if err := s.repo.Create(r); err != nil {
		s.logger.Error("failed to create daily report", "error", err)
		return nil, err
	}

	s.logger.Info("daily report created", "report_id", r.ID, "owner_id", r.OwnerID, "date", r.Date)
	return r, nil
}

func (s *Service) Update(ident *internal.Identity, id string, dto UpdateReportDTO) (*DailyReport, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	r, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !ident.CanModify(r.OwnerID) {
		return nil, internal.ErrNotOwner
	}

	dto.Apply(r)
	if err := s.repo.Update(r); err != nil {
		s.logger.Error("failed to update daily report", "report_id", id, "error", err)
		return nil, err
	}
	return r, nil
}

func (s *Service) Delete(ident *internal.Identity, id string) error {
	r, err := s.repo.GetByID(id)
	if err != nil {
		if err == internal.ErrResourceNotFound {
			return nil
		}
		return err
	}
	if !ident.CanModify(r.OwnerID) {
		return internal.ErrNotOwner
	}
	return s.repo.Delete(id)
}
