package workorder

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/dschabow91/maintrack/internal"
)

func TestWorkOrder(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "WorkOrder Module Suite")
}

// Mock repository for testing
type mockRepository struct {
	orders   map[string]*WorkOrder
	comments map[string]*Comment
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		orders:   make(map[string]*WorkOrder),
		comments: make(map[string]*Comment),
	}
}

func (m *mockRepository) Create(wo *WorkOrder) error {
	m.orders[wo.ID] = wo
	return nil
}

func (m *mockRepository) GetByID(id string) (*WorkOrder, error) {
	if wo, ok := m.orders[id]; ok {
		copied := *wo
		return &copied, nil
	}
	return nil, internal.ErrResourceNotFound
}

func (m *mockRepository) List() ([]*WorkOrder, error) {
	out := make([]*WorkOrder, 0, len(m.orders))
	for _, wo := range m.orders {
		out = append(out, wo)
	}
	return out, nil
}

func (m *mockRepository) Update(wo *WorkOrder) error {
	m.orders[wo.ID] = wo
	return nil
}

func (m *mockRepository) Delete(id string) error {
	delete(m.orders, id)
	return nil
}

func (m *mockRepository) CreateComment(c *Comment) error {
	m.comments[c.ID] = c
	return nil
}

func (m *mockRepository) GetComment(workOrderID, commentID string) (*Comment, error) {
	if c, ok := m.comments[commentID]; ok && c.WorkOrderID == workOrderID {
		return c, nil
	}
	return nil, internal.ErrResourceNotFound
}

func (m *mockRepository) ListComments(workOrderID string) ([]*Comment, error) {
	var out []*Comment
	for _, c := range m.comments {
		if c.WorkOrderID == workOrderID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockRepository) DeleteComment(workOrderID, commentID string) error {
	delete(m.comments, commentID)
	return nil
}

var (
	adminIdent = &internal.Identity{ID: "admin-1", Name: "Alex Admin", Role: internal.RoleAdmin}
	techIdent  = &internal.Identity{ID: "tech-1", Name: "Taylor Tech", Role: internal.RoleTech}
	otherTech  = &internal.Identity{ID: "tech-2", Name: "Robin Tech", Role: internal.RoleTech}
)

var _ = ginkgo.Describe("WorkOrderService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		service = NewService(mockRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	createOwnedBy := func(ident *internal.Identity) *WorkOrder {
		wo, err := service.Create(ident, CreateWorkOrderDTO{Title: "Fix pump"})
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return wo
	}

	ginkgo.Describe("Create", func() {
		ginkgo.It("should set ownerId from the acting identity", func() {
			wo := createOwnedBy(techIdent)

			gomega.Expect(wo.OwnerID).To(gomega.Equal("tech-1"))
			gomega.Expect(wo.ID).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should default priority and status", func() {
			wo := createOwnedBy(techIdent)

			gomega.Expect(wo.Priority).To(gomega.Equal(PriorityMedium))
			gomega.Expect(wo.Status).To(gomega.Equal(StatusOpen))
		})

		ginkgo.It("should reject an unknown priority", func() {
			_, err := service.Create(techIdent, CreateWorkOrderDTO{Title: "X", Priority: "Urgent"})

			gomega.Expect(err).To(gomega.HaveOccurred())
			_, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
		})

		ginkgo.It("should require a title", func() {
			_, err := service.Create(techIdent, CreateWorkOrderDTO{})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Update authorization", func() {
		ginkgo.It("should let the owner update", func() {
			wo := createOwnedBy(techIdent)

			title := "New title"
			err := service.Update(techIdent, wo.ID, UpdateWorkOrderDTO{Title: &title})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.orders[wo.ID].Title).To(gomega.Equal("New title"))
		})

		ginkgo.It("should let an admin update someone else's order", func() {
			wo := createOwnedBy(techIdent)

			status := StatusCompleted
			err := service.Update(adminIdent, wo.ID, UpdateWorkOrderDTO{Status: &status})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.orders[wo.ID].Status).To(gomega.Equal(StatusCompleted))
		})

		ginkgo.It("should forbid a non-owner tech", func() {
			wo := createOwnedBy(techIdent)

			title := "Hijacked"
			err := service.Update(otherTech, wo.ID, UpdateWorkOrderDTO{Title: &title})

			gomega.Expect(err).To(gomega.Equal(internal.ErrNotOwner))
			gomega.Expect(mockRepo.orders[wo.ID].Title).To(gomega.Equal("Fix pump"))
		})

		ginkgo.It("should never change ownerId on update", func() {
			wo := createOwnedBy(techIdent)

			title := "Renamed"
			err := service.Update(adminIdent, wo.ID, UpdateWorkOrderDTO{Title: &title})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.orders[wo.ID].OwnerID).To(gomega.Equal("tech-1"))
		})

		ginkgo.It("should allow reopening a completed order", func() {
			wo := createOwnedBy(techIdent)
			status := StatusCompleted
			gomega.Expect(service.Update(techIdent, wo.ID, UpdateWorkOrderDTO{Status: &status})).To(gomega.Succeed())

			reopened := StatusOpen
			err := service.Update(techIdent, wo.ID, UpdateWorkOrderDTO{Status: &reopened})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.orders[wo.ID].Status).To(gomega.Equal(StatusOpen))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should be a no-op for an absent id", func() {
			err := service.Delete(techIdent, "missing")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should forbid a non-owner tech when the record exists", func() {
			wo := createOwnedBy(techIdent)

			err := service.Delete(otherTech, wo.ID)

			gomega.Expect(err).To(gomega.Equal(internal.ErrNotOwner))
			gomega.Expect(mockRepo.orders).To(gomega.HaveKey(wo.ID))
		})

		ginkgo.It("should let an admin delete any order", func() {
			wo := createOwnedBy(techIdent)

			err := service.Delete(adminIdent, wo.ID)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.orders).ToNot(gomega.HaveKey(wo.ID))
		})
	})

	ginkgo.Describe("Comments", func() {
		ginkgo.It("should denormalize the author name at creation", func() {
			wo := createOwnedBy(techIdent)

			c, err := service.AddComment(techIdent, wo.ID, CreateCommentDTO{Text: "checked bearings"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(c.AuthorID).To(gomega.Equal("tech-1"))
			gomega.Expect(c.AuthorName).To(gomega.Equal("Taylor Tech"))
		})

		ginkgo.It("should only let the author or an admin delete", func() {
			wo := createOwnedBy(techIdent)
			c, _ := service.AddComment(techIdent, wo.ID, CreateCommentDTO{Text: "note"})

			gomega.Expect(service.DeleteComment(otherTech, wo.ID, c.ID)).To(gomega.Equal(internal.ErrNotOwner))
			gomega.Expect(service.DeleteComment(adminIdent, wo.ID, c.ID)).To(gomega.Succeed())
		})

		ginkgo.It("should treat deleting an absent comment as success", func() {
			wo := createOwnedBy(techIdent)

			err := service.DeleteComment(otherTech, wo.ID, "missing")

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})
	})
})

var _ = ginkgo.Describe("Overdue", func() {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

	ginkgo.It("should be false with no due date", func() {
		gomega.Expect(Overdue(&WorkOrder{Status: StatusOpen}, now)).To(gomega.BeFalse())
	})

	ginkgo.It("should be true for a past due date on an open order", func() {
		wo := &WorkOrder{Status: StatusOpen, DueDate: "2024-03-01"}
		gomega.Expect(Overdue(wo, now)).To(gomega.BeTrue())
	})

	ginkgo.It("should be false for a future due date", func() {
		wo := &WorkOrder{Status: StatusOpen, DueDate: "2024-04-01"}
		gomega.Expect(Overdue(wo, now)).To(gomega.BeFalse())
	})

	ginkgo.It("should be false once completed or canceled", func() {
		gomega.Expect(Overdue(&WorkOrder{Status: StatusCompleted, DueDate: "2024-03-01"}, now)).To(gomega.BeFalse())
		gomega.Expect(Overdue(&WorkOrder{Status: StatusCanceled, DueDate: "2024-03-01"}, now)).To(gomega.BeFalse())
	})

	ginkgo.It("should be true for a past due date on an in-progress order", func() {
		wo := &WorkOrder{Status: StatusInProgress, DueDate: "2024-03-01"}
		gomega.Expect(Overdue(wo, now)).To(gomega.BeTrue())
	})

	ginkgo.It("should be false for an unparseable due date", func() {
		wo := &WorkOrder{Status: StatusOpen, DueDate: "03/01/2024"}
		gomega.Expect(Overdue(wo, now)).To(gomega.BeFalse())
	})
})
