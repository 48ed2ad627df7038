package user

import (
	"time"
)

// User is the persisted account record. The password hash never leaves the
// backend; API projections use View / DirectoryEntry.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"size:20;not null;default:'tech'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// View is the full user projection without credentials, admin-only.
type View struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// DirectoryEntry is the technician directory projection available to every
// authenticated identity.
type DirectoryEntry struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) ToView() View {
	return View{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

// Repository defines the data access methods for user accounts.
type Repository interface {
	Create(u *User) error
	GetByID(id string) (*User, error)
	// GetByEmail matches case-insensitively; email uniqueness is
	// case-insensitive as well.
	GetByEmail(email string) (*User, error)
	List() ([]*User, error)
	ListByRole(role string) ([]*User, error)
	UpdatePassword(id, passwordHash string) error
	Count() (int64, error)
}
