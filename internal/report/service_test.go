package report

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/dschabow91/maintrack/internal"
)

func TestReport(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Report Module Suite")
}

// Mock repository for testing
type mockRepository struct {
	reports map[string]*DailyReport
}

func newMockRepository() *mockRepository {
	return &mockRepository{reports: make(map[string]*DailyReport)}
}

func (m *mockRepository) Create(r *DailyReport) error {
	m.reports[r.ID] = r
	return nil
}

func (m *mockRepository) GetByID(id string) (*DailyReport, error) {
	if r, ok := m.reports[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, internal.ErrResourceNotFound
}

func (m *mockRepository) List(ownerID, date string) ([]*DailyReport, error) {
	var out []*DailyReport
	for _, r := range m.reports {
		if ownerID != "" && r.OwnerID != ownerID {
			continue
		}
		if date != "" && r.Date != date {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepository) Update(r *DailyReport) error {
	m.reports[r.ID] = r
	return nil
}

func (m *mockRepository) Delete(id string) error {
	delete(m.reports, id)
	return nil
}

var (
	adminIdent = &internal.Identity{ID: "admin-1", Name: "Alex Admin", Role: internal.RoleAdmin}
	techIdent  = &internal.Identity{ID: "tech-1", Name: "Taylor Tech", Role: internal.RoleTech}
	otherTech  = &internal.Identity{ID: "tech-2", Name: "Robin Tech", Role: internal.RoleTech}
)

var _ = ginkgo.Describe("ReportService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		service = NewService(mockRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	create := func(ident *internal.Identity, date string) *DailyReport {
		r, err := service.Create(ident, CreateReportDTO{Date: date, Shift: "Night", Hours: 8})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return r
	}

	ginkgo.Describe("Create", func() {
		ginkgo.It("should snapshot owner id and name", func() {
			r := create(techIdent, "2024-03-15")

			gomega.Expect(r.OwnerID).To(gomega.Equal("tech-1"))
			gomega.Expect(r.OwnerName).To(gomega.Equal("Taylor Tech"))
		})

		ginkgo.It("should default imageUrls to an empty list", func() {
			r := create(techIdent, "2024-03-15")

			var urls []string
			gomega.Expect(json.Unmarshal(r.ImageURLs, &urls)).To(gomega.Succeed())
			gomega.Expect(urls).To(gomega.BeEmpty())
		})

		ginkgo.It("should reject negative hours", func() {
			_, err := service.Create(techIdent, CreateReportDTO{Date: "2024-03-15", Hours: -1})

			gomega.Expect(err).To(gomega.HaveOccurred())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeInvalidHours))
		})

		ginkgo.It("should require a date", func() {
			_, err := service.Create(techIdent, CreateReportDTO{Hours: 8})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("List scoping", func() {
		ginkgo.It("should show admins everything", func() {
			create(techIdent, "2024-03-15")
			create(otherTech, "2024-03-15")

			all, err := service.List(adminIdent, "")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(all).To(gomega.HaveLen(2))
		})

		ginkgo.It("should show techs only their own reports", func() {
			create(techIdent, "2024-03-15")
			create(otherTech, "2024-03-15")

			mine, err := service.List(techIdent, "")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mine).To(gomega.HaveLen(1))
			gomega.Expect(mine[0].OwnerID).To(gomega.Equal("tech-1"))
		})

		ginkgo.It("should filter by date when given", func() {
			create(techIdent, "2024-03-14")
			create(techIdent, "2024-03-15")

			day, err := service.List(techIdent, "2024-03-15")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(day).To(gomega.HaveLen(1))
			gomega.Expect(day[0].Date).To(gomega.Equal("2024-03-15"))
		})
	})

	ginkgo.Describe("Get", func() {
		ginkgo.It("should hide another tech's report as not found", func() {
			r := create(techIdent, "2024-03-15")

			_, err := service.Get(otherTech, r.ID)

			gomega.Expect(err).To(gomega.Equal(internal.ErrResourceNotFound))
		})
	})

	ginkgo.Describe("Update and Delete", func() {
		ginkgo.It("should forbid a non-owner tech", func() {
			r := create(techIdent, "2024-03-15")

			hours := 4.0
			_, err := service.Update(otherTech, r.ID, UpdateReportDTO{Hours: &hours})
			gomega.Expect(err).To(gomega.Equal(internal.ErrNotOwner))

			gomega.Expect(service.Delete(otherTech, r.ID)).To(gomega.Equal(internal.ErrNotOwner))
		})

		ginkgo.It("should let an admin update any report", func() {
			r := create(techIdent, "2024-03-15")

			issues := "compressor tripped twice"
			updated, err := service.Update(adminIdent, r.ID, UpdateReportDTO{Issues: &issues})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(updated.Issues).To(gomega.Equal(issues))
			gomega.Expect(updated.OwnerID).To(gomega.Equal("tech-1"))
		})

		ginkgo.It("should treat deleting an absent id as success", func() {
			gomega.Expect(service.Delete(techIdent, "missing")).To(gomega.Succeed())
		})
	})
})
