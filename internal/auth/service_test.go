package auth

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/user"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock user repository for testing
type mockUserRepository struct {
	byID        map[string]*user.User
	returnError error
}

func newMockUserRepository() *mockUserRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	users := []*user.User{
		{ID: "u-1", Name: "Taylor Tech", Email: "tech@example.com", PasswordHash: string(hash), Role: internal.RoleTech},
		{ID: "u-2", Name: "Alex Admin", Email: "admin@example.com", PasswordHash: string(hash), Role: internal.RoleAdmin},
	}

	byID := make(map[string]*user.User)
	for _, u := range users {
		byID[u.ID] = u
	}
	return &mockUserRepository{byID: byID}
}

func (m *mockUserRepository) Create(u *user.User) error {
	if m.returnError != nil {
		return m.returnError
	}
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepository) GetByID(id string) (*user.User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return nil, internal.ErrResourceNotFound
}

func (m *mockUserRepository) GetByEmail(email string) (*user.User, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	for _, u := range m.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, internal.ErrResourceNotFound
}

func (m *mockUserRepository) List() ([]*user.User, error) {
	out := make([]*user.User, 0, len(m.byID))
	for _, u := range m.byID {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepository) ListByRole(role string) ([]*user.User, error) {
	var out []*user.User
	for _, u := range m.byID {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) UpdatePassword(id, passwordHash string) error {
	u, ok := m.byID[id]
	if !ok {
		return internal.ErrResourceNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *mockUserRepository) Count() (int64, error) {
	return int64(len(m.byID)), nil
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator("test-secret-at-least-16", 7*24*time.Hour)
		service = NewService(mockRepo, tokenGen, bcrypt.MinCost, slog.New(slog.NewTextHandler(io.Discard, nil)))
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return a token and the user view", func() {
				resp, err := service.Authenticate(LoginDTO{Email: "tech@example.com", Password: "correct_password"})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(resp.User.ID).To(gomega.Equal("u-1"))
				gomega.Expect(resp.User.Role).To(gomega.Equal(internal.RoleTech))
			})

			ginkgo.It("should encode the full identity snapshot in the token", func() {
				resp, err := service.Authenticate(LoginDTO{Email: "admin@example.com", Password: "correct_password"})
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				ident, err := service.ValidateAccessToken(resp.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(ident.ID).To(gomega.Equal("u-2"))
				gomega.Expect(ident.Name).To(gomega.Equal("Alex Admin"))
				gomega.Expect(ident.Email).To(gomega.Equal("admin@example.com"))
				gomega.Expect(ident.Role).To(gomega.Equal(internal.RoleAdmin))
			})

			ginkgo.It("should match emails case-insensitively", func() {
				resp, err := service.Authenticate(LoginDTO{Email: "TECH@Example.COM", Password: "correct_password"})

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(resp.User.ID).To(gomega.Equal("u-1"))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should reject an unknown email", func() {
				resp, err := service.Authenticate(LoginDTO{Email: "nobody@example.com", Password: "correct_password"})

				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
				gomega.Expect(resp).To(gomega.BeNil())
			})

			ginkgo.It("should reject a wrong password with the same error", func() {
				resp, err := service.Authenticate(LoginDTO{Email: "tech@example.com", Password: "wrong_password"})

				gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidCredentials))
				gomega.Expect(resp).To(gomega.BeNil())
			})
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.It("should create a tech account by default", func() {
			view, err := service.Register(RegisterDTO{Name: "New Tech", Email: "new@example.com"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(view.Role).To(gomega.Equal(internal.RoleTech))
			gomega.Expect(view.ID).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should reject a duplicate email", func() {
			_, err := service.Register(RegisterDTO{Name: "Dup", Email: "tech@example.com"})

			gomega.Expect(err).To(gomega.Equal(internal.ErrEmailExists))
		})

		ginkgo.It("should reject a duplicate email that differs only in case", func() {
			_, err := service.Register(RegisterDTO{Name: "Dup", Email: "Tech@Example.Com"})

			gomega.Expect(err).To(gomega.Equal(internal.ErrEmailExists))
		})

		ginkgo.It("should reject an unknown role", func() {
			_, err := service.Register(RegisterDTO{Name: "X", Email: "x@example.com", Role: "superuser"})

			gomega.Expect(err).To(gomega.HaveOccurred())
			_, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
		})
	})

	ginkgo.Describe("ChangePassword", func() {
		ginkgo.It("should update the hash when the current password matches", func() {
			err := service.ChangePassword("u-1", ChangePasswordDTO{CurrentPassword: "correct_password", NewPassword: "brand-new-pass"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = service.Authenticate(LoginDTO{Email: "tech@example.com", Password: "brand-new-pass"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should reject a wrong current password", func() {
			err := service.ChangePassword("u-1", ChangePasswordDTO{CurrentPassword: "nope", NewPassword: "brand-new-pass"})

			gomega.Expect(err).To(gomega.Equal(internal.ErrWrongPassword))
		})
	})

	ginkgo.Describe("Token validation", func() {
		ginkgo.It("should reject an expired token", func() {
			expired := NewJWTTokenGenerator("test-secret-at-least-16", 1*time.Nanosecond)
			token, err := expired.GenerateToken(&internal.Identity{ID: "u-1", Role: internal.RoleTech})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			time.Sleep(10 * time.Millisecond)
			_, err = expired.ValidateToken(token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrTokenExpired))
		})

		ginkgo.It("should reject a token signed with a different secret", func() {
			other := NewJWTTokenGenerator("another-secret-value-16", time.Hour)
			token, err := other.GenerateToken(&internal.Identity{ID: "u-1"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			_, err = tokenGen.ValidateToken(token)
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})

		ginkgo.It("should reject garbage", func() {
			_, err := tokenGen.ValidateToken("not.a.token")
			gomega.Expect(err).To(gomega.Equal(internal.ErrInvalidToken))
		})

		ginkgo.It("should keep trusting the snapshot after the record changes", func() {
			resp, err := service.Authenticate(LoginDTO{Email: "tech@example.com", Password: "correct_password"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// Promote the user after the token was issued.
			mockRepo.byID["u-1"].Role = internal.RoleAdmin

			ident, err := service.ValidateAccessToken(resp.Token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(ident.Role).To(gomega.Equal(internal.RoleTech))
		})
	})

	ginkgo.Describe("EnsureBootstrapAdmin", func() {
		ginkgo.It("should do nothing when users exist", func() {
			err := service.EnsureBootstrapAdmin(internal.BootstrapConfig{})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.byID).To(gomega.HaveLen(2))
		})

		ginkgo.It("should seed an admin into an empty table", func() {
			mockRepo.byID = map[string]*user.User{}

			err := service.EnsureBootstrapAdmin(internal.BootstrapConfig{
				AdminName:     "Root",
				AdminEmail:    "root@example.com",
				AdminPassword: "root-pass",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			u, err := mockRepo.GetByEmail("root@example.com")
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(u.Role).To(gomega.Equal(internal.RoleAdmin))
		})
	})
})
