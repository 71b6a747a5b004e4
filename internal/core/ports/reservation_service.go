package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// ReservationService defines use-case operations for reservations.
type ReservationService interface {
	List(ctx context.Context) ([]*domain.Reservation, error)
	ListByRoomNumber(ctx context.Context, roomNumber int) ([]*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error)
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Create(ctx context.Context, reservation domain.Reservation) (*domain.Reservation, error)
	// Update overwrites every editable field of the stored reservation with
	// the values in replacement.
	Update(ctx context.Context, id string, replacement domain.Reservation) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}
