package pmschedule

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/dschabow91/maintrack/internal"
)

func TestPMSchedule(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "PMSchedule Module Suite")
}

// Mock repository for testing
type mockRepository struct {
	schedules map[string]*Schedule
}

func newMockRepository() *mockRepository {
	return &mockRepository{schedules: make(map[string]*Schedule)}
}

func (m *mockRepository) Create(s *Schedule) error {
	m.schedules[s.ID] = s
	return nil
}

func (m *mockRepository) GetByID(id string) (*Schedule, error) {
	if s, ok := m.schedules[id]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, internal.ErrResourceNotFound
}

func (m *mockRepository) List() ([]*Schedule, error) {
	out := make([]*Schedule, 0, len(m.schedules))
	for _, s := range m.schedules {
		out = append(out, s)
	}
	return out, nil
}

func (m *mockRepository) Update(s *Schedule) error {
	m.schedules[s.ID] = s
	return nil
}

func (m *mockRepository) Delete(id string) error {
	delete(m.schedules, id)
	return nil
}

var (
	adminIdent = &internal.Identity{ID: "admin-1", Role: internal.RoleAdmin}
	techIdent  = &internal.Identity{ID: "tech-1", Role: internal.RoleTech}
)

var _ = ginkgo.Describe("NextDue", func() {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	ginkgo.It("should return a future start date unchanged", func() {
		due, err := NextDue("2024-04-01", FrequencyDaily, 1, now)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(internal.FormatDate(due)).To(gomega.Equal("2024-04-01"))
	})

	ginkgo.It("should step daily by the interval", func() {
		due, err := NextDue("2024-03-10", FrequencyDaily, 3, now)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		// 03-10 -> 03-13 -> 03-16
		gomega.Expect(internal.FormatDate(due)).To(gomega.Equal("2024-03-16"))
	})

	ginkgo.It("should step weekly in 7-day blocks", func() {
		due, err := NextDue("2024-01-01", FrequencyWeekly, 2, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		// 01-01 + k*14d; first candidate on or after 02-01 is 02-12
		gomega.Expect(internal.FormatDate(due)).To(gomega.Equal("2024-02-12"))
	})

	ginkgo.It("should step monthly with calendar arithmetic", func() {
		due, err := NextDue("2024-01-01", FrequencyMonthly, 1, now)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		// 01-01, 02-01, 03-01 are all before 03-15; next is 04-01
		gomega.Expect(internal.FormatDate(due)).To(gomega.Equal("2024-04-01"))
	})

	ginkgo.It("should return the start date itself when it equals now", func() {
		due, err := NextDue("2024-03-15", FrequencyMonthly, 1, now)

		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(internal.FormatDate(due)).To(gomega.Equal("2024-03-15"))
	})

	ginkgo.It("should reject interval below 1", func() {
		_, err := NextDue("2024-01-01", FrequencyDaily, 0, now)

		gomega.Expect(err).To(gomega.HaveOccurred())
		appErr, ok := internal.IsAppError(err)
		gomega.Expect(ok).To(gomega.BeTrue())
		gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidSchedule))
	})

	ginkgo.It("should reject an unknown frequency", func() {
		_, err := NextDue("2024-01-01", "Fortnightly", 1, now)

		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("should reject a malformed start date", func() {
		_, err := NextDue("January 1", FrequencyDaily, 1, now)

		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})

var _ = ginkgo.Describe("PMScheduleService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		service = NewService(mockRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
		service.now = func() time.Time {
			return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		}
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should forbid a tech", func() {
			_, err := service.Create(techIdent, CreateScheduleDTO{Asset: "AHU-1", Task: "Filters"})

			gomega.Expect(err).To(gomega.Equal(internal.ErrAdminOnly))
		})

		ginkgo.It("should attach the projected next due date", func() {
			view, err := service.Create(adminIdent, CreateScheduleDTO{
				Asset:     "AHU-1",
				Task:      "Filters",
				StartDate: "2024-01-01",
				Frequency: FrequencyMonthly,
				Interval:  1,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(view.NextDue).To(gomega.Equal("2024-04-01"))
		})

		ginkgo.It("should reject an invalid schedule", func() {
			_, err := service.Create(adminIdent, CreateScheduleDTO{
				Asset:     "AHU-1",
				Task:      "Filters",
				Frequency: "Hourly",
				Interval:  1,
			})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should forbid a tech", func() {
			view, _ := service.Create(adminIdent, CreateScheduleDTO{Asset: "A", Task: "T", StartDate: "2024-01-01"})

			interval := 2
			_, err := service.Update(techIdent, view.ID, UpdateScheduleDTO{Interval: &interval})

			gomega.Expect(err).To(gomega.Equal(internal.ErrAdminOnly))
		})

		ginkgo.It("should reject interval below 1", func() {
			view, _ := service.Create(adminIdent, CreateScheduleDTO{Asset: "A", Task: "T", StartDate: "2024-01-01"})

			interval := 0
			_, err := service.Update(adminIdent, view.ID, UpdateScheduleDTO{Interval: &interval})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should forbid a tech", func() {
			gomega.Expect(service.Delete(techIdent, "any")).To(gomega.Equal(internal.ErrAdminOnly))
		})

		ginkgo.It("should succeed for an absent id when admin", func() {
			gomega.Expect(service.Delete(adminIdent, "missing")).To(gomega.Succeed())
		})
	})
})
