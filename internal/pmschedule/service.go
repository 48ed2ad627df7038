package pmschedule

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

func (s *Service) List() ([]*View, error) {
	schedules, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	views := make([]*View, 0, len(schedules))
	for _, sch := range schedules {
		views = append(views, s.view(sch))
	}
	return views, nil
}

func (s *Service) Get(id string) (*View, error) {
	sch, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.view(sch), nil
}

func (s *Service) Create(ident *internal.Identity, dto CreateScheduleDTO) (*View, error) {
	if !ident.IsAdmin() {
		return nil, internal.ErrAdminOnly
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	sch := &Schedule{
		ID:        uuid.NewString(),
		Asset:     dto.Asset,
		Task:      dto.Task,
		StartDate: dto.StartDate,
		Frequency: dto.Frequency,
		Interval:  dto.Interval,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(sch); err != nil {
		s.logger.Error("failed to create pm schedule", "error", err)
		return nil, err
	}

	s.logger.Info("pm schedule created", "schedule_id", sch.ID, "asset", sch.Asset)
	return s.view(sch), nil
}

func (s *Service) Update(ident *internal.Identity, id string, dto UpdateScheduleDTO) (*View, error) {
	if !ident.IsAdmin() {
		return nil, internal.ErrAdminOnly
	}
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	sch, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	dto.Apply(sch)
	if err := s.repo.Update(sch); err != nil {
		s.logger.Error("failed to update pm schedule", "schedule_id", id, "error", err)
		return nil, err
	}
	return s.view(sch), nil
}

func (s *Service) Delete(ident *internal.Identity, id string) error {
	if !ident.IsAdmin() {
		return internal.ErrAdminOnly
	}
	return s.repo.Delete(id)
}

// view computes the derived next due date on the way out. It is never
// persisted. Schedules are validated on write, so a projection failure here
// means stale data; the view then carries an empty nextDue.
func (s *Service) view(sch *Schedule) *View {
	v := &View{Schedule: sch}
	due, err := NextDue(sch.StartDate, sch.Frequency, sch.Interval, s.now())
	if err == nil {
		v.NextDue = internal.FormatDate(due)
	}
	return v
}
