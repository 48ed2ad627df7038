package asset

import (
	"io"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/dschabow91/maintrack/internal"
)

func TestAsset(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Asset Module Suite")
}

// Mock repository for testing
type mockRepository struct {
	assets map[string]*Asset
}

func newMockRepository() *mockRepository {
	return &mockRepository{assets: make(map[string]*Asset)}
}

func (m *mockRepository) Create(a *Asset) error {
	m.assets[a.ID] = a
	return nil
}

func (m *mockRepository) GetByID(id string) (*Asset, error) {
	if a, ok := m.assets[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, internal.ErrResourceNotFound
}

func (m *mockRepository) List() ([]*Asset, error) {
	out := make([]*Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockRepository) Update(a *Asset) error {
	m.assets[a.ID] = a
	return nil
}

func (m *mockRepository) Delete(id string) error {
	delete(m.assets, id)
	return nil
}

var (
	adminIdent = &internal.Identity{ID: "admin-1", Role: internal.RoleAdmin}
	techIdent  = &internal.Identity{ID: "tech-1", Role: internal.RoleTech}
)

var _ = ginkgo.Describe("AssetService", func() {
	var (
		service  *Service
		mockRepo *mockRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockRepository()
		service = NewService(mockRepo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	ginkgo.Describe("Mutations", func() {
		ginkgo.It("should gate create on the admin role", func() {
			_, err := service.Create(techIdent, CreateAssetDTO{Name: "AHU-1"})
			gomega.Expect(err).To(gomega.Equal(internal.ErrAdminOnly))

			a, err := service.Create(adminIdent, CreateAssetDTO{Name: "AHU-1", Criticality: CriticalityHigh})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(a.ID).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should gate update and delete on the admin role", func() {
			a, _ := service.Create(adminIdent, CreateAssetDTO{Name: "AHU-1"})

			name := "AHU-1B"
			err := service.Update(techIdent, a.ID, UpdateAssetDTO{Name: &name})
			gomega.Expect(err).To(gomega.Equal(internal.ErrAdminOnly))

			gomega.Expect(service.Delete(techIdent, a.ID)).To(gomega.Equal(internal.ErrAdminOnly))
			gomega.Expect(service.Delete(adminIdent, a.ID)).To(gomega.Succeed())
		})

		ginkgo.It("should reject an unknown criticality", func() {
			_, err := service.Create(adminIdent, CreateAssetDTO{Name: "AHU-1", Criticality: "Extreme"})

			gomega.Expect(err).To(gomega.HaveOccurred())
		})
	})

	ginkgo.Describe("Reads", func() {
		ginkgo.It("should be open to any authenticated identity", func() {
			_, err := service.Create(adminIdent, CreateAssetDTO{Name: "AHU-1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			assets, err := service.List()

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(assets).To(gomega.HaveLen(1))
		})
	})
})
