package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByRole returns users holding a role that contains role,
	// case-insensitively.
	FindByRole(ctx context.Context, role string) ([]*domain.User, error)
	// Create inserts a new user and sets its ID. It returns domain.ErrUserExists
	// when the email is already registered.
	Create(ctx context.Context, user *domain.User) error
	Save(ctx context.Context, user *domain.User) error
	DeleteByID(ctx context.Context, id string) error
}
