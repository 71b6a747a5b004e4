package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// ReservationRepository defines persistence operations for reservations.
type ReservationRepository interface {
	FindAll(ctx context.Context) ([]*domain.Reservation, error)
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	FindByRoomNumber(ctx context.Context, roomNumber int) ([]*domain.Reservation, error)
	FindByUserID(ctx context.Context, userID string) ([]*domain.Reservation, error)
	Create(ctx context.Context, reservation *domain.Reservation) error
	Save(ctx context.Context, reservation *domain.Reservation) error
	DeleteByID(ctx context.Context, id string) error
}
