package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/user"
)

// Service is the main auth service with dependencies
type Service struct {
	users      user.Repository
	tokens     TokenGenerator
	bcryptCost int
	logger     *slog.Logger
}

// NewService creates a new auth service
func NewService(users user.Repository, tokens TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		users:      users,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// NewJWTTokenGenerator creates a new JWT token generator
func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

// Authenticate validates credentials and returns a session token with the
// identity snapshot it encodes.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(dto.Email)
	if err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	if err := VerifyPassword(u.PasswordHash, dto.Password); err != nil {
		return nil, internal.ErrInvalidCredentials
	}

	ident := &internal.Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}

	token, err := s.tokens.GenerateToken(ident)
	if err != nil {
		s.logger.Error("failed to generate token", "error", err, "user_id", u.ID)
		return nil, internal.NewInternalError("failed to generate token", err)
	}

	return &LoginResponse{
		Token: token,
		User:  u.ToView(),
	}, nil
}

// Register creates a new account. Duplicate emails, compared
// case-insensitively, fail with a conflict.
func (s *Service) Register(dto RegisterDTO) (*user.View, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.users.GetByEmail(dto.Email); err == nil && existing != nil {
		s.logger.Warn("registration rejected: email exists", "email", dto.Email)
		return nil, internal.ErrEmailExists
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	now := time.Now()
	u := &user.User{
		ID:           uuid.NewString(),
		Name:         dto.Name,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         dto.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", u.ID, "role", u.Role)

	view := u.ToView()
	return &view, nil
}

// ChangePassword is self-service and requires proof of the current password.
func (s *Service) ChangePassword(identityID string, dto ChangePasswordDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	u, err := s.users.GetByID(identityID)
	if err != nil {
		return internal.ErrResourceNotFound
	}

	if err := VerifyPassword(u.PasswordHash, dto.CurrentPassword); err != nil {
		s.logger.Warn("password change rejected: wrong current password", "user_id", identityID)
		return internal.ErrWrongPassword
	}

	hash, err := HashPassword(dto.NewPassword, s.bcryptCost)
	if err != nil {
		return internal.NewInternalError("failed to hash password", err)
	}

	if err := s.users.UpdatePassword(u.ID, hash); err != nil {
		s.logger.Error("failed to update password", "error", err, "user_id", identityID)
		return internal.NewInternalError("failed to update password", err)
	}

	s.logger.Info("password changed", "user_id", identityID)
	return nil
}

// ValidateAccessToken validates a session token and returns the identity
// snapshot it carries.
func (s *Service) ValidateAccessToken(tokenString string) (*internal.Identity, error) {
	return s.tokens.ValidateToken(tokenString)
}

// EnsureBootstrapAdmin seeds exactly one admin account into an empty user
// table so a fresh deployment can log in.
func (s *Service) EnsureBootstrapAdmin(cfg internal.BootstrapConfig) error {
	count, err := s.users.Count()
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	name := cfg.AdminName
	if name == "" {
		name = "Admin"
	}
	email := cfg.AdminEmail
	if email == "" {
		email = "admin@maintrack.local"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "admin123"
		s.logger.Warn("bootstrap admin created with default password, change it immediately", "email", email)
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	now := time.Now()
	admin := &user.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         internal.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(admin); err != nil {
		return fmt.Errorf("create bootstrap admin: %w", err)
	}

	s.logger.Info("bootstrap admin created", "email", email)
	return nil
}

// GenerateToken creates a signed session token from an identity snapshot.
func (j *JWTTokenGenerator) GenerateToken(ident *internal.Identity) (string, error) {
	expiresAt := time.Now().Add(j.TokenTTL)

	claims := &Claims{
		Name:  ident.Name,
		Email: ident.Email,
		Role:  ident.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   ident.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

// ValidateToken verifies a session token and rebuilds the identity snapshot.
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*internal.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || strings.TrimSpace(claims.Subject) == "" {
		return nil, internal.ErrInvalidToken
	}

	return &internal.Identity{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
