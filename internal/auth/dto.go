package auth

import (
	"strings"

	"github.com/dschabow91/maintrack/internal"
)

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	if d.Email == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

// RegisterDTO creates a new account. Registration is admin-only; role
// defaults to tech and password to a changeme placeholder when omitted.
type RegisterDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (d *RegisterDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return internal.NewValidationError("name is required", internal.ErrCodeValidationFailed)
	}
	if strings.TrimSpace(d.Email) == "" {
		return internal.NewValidationError("email is required", internal.ErrCodeValidationFailed)
	}
	if d.Password == "" {
		d.Password = "changeme"
	}
	if d.Role == "" {
		d.Role = internal.RoleTech
	}
	if d.Role != internal.RoleAdmin && d.Role != internal.RoleTech {
		return internal.NewValidationError("role must be admin or tech", internal.ErrCodeInvalidRole)
	}
	return nil
}

// ChangePasswordDTO is the self-service credential change, requiring proof
// of the current password.
type ChangePasswordDTO struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (d ChangePasswordDTO) Validate() error {
	if d.NewPassword == "" {
		return internal.NewValidationError("new password is required", internal.ErrCodeValidationFailed)
	}
	return nil
}
