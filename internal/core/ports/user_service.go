package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// CreateUserInput is a registration request with defaults resolved.
type CreateUserInput struct {
	Email         string
	Password      string
	FirstName     string
	LastName      string
	PhoneNumber   string
	Roles         []string
	Language      string
	NewsLetter    bool
	Notifications bool
}

// UserService defines use-case operations for users.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	// GetByEmail returns domain.ErrUserNotFound when nobody uses email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByRole(ctx context.Context, role string) ([]*domain.User, error)
	Guests(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	EditProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
