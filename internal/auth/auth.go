package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dschabow91/maintrack/internal"
	"github.com/dschabow91/maintrack/internal/user"
)

// ServiceAPI is the surface the HTTP layer depends on.
type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*LoginResponse, error)
	Register(dto RegisterDTO) (*user.View, error)
	ChangePassword(identityID string, dto ChangePasswordDTO) error
	ValidateAccessToken(tokenString string) (*internal.Identity, error)
}

// TokenGenerator issues and verifies session tokens carrying an identity
// snapshot.
type TokenGenerator interface {
	GenerateToken(ident *internal.Identity) (string, error)
	ValidateToken(tokenString string) (*internal.Identity, error)
}

// Claims are the JWT claims: the identity snapshot plus registered claims.
// The snapshot is trusted as-is until the token expires.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

type LoginResponse struct {
	Token string    `json:"token"`
	User  user.View `json:"user"`
}

func VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
