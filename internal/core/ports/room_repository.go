package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// RoomRepository defines persistence operations for rooms.
type RoomRepository interface {
	FindAll(ctx context.Context) ([]*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	FindByRoomNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	FindByType(ctx context.Context, roomType string) ([]*domain.Room, error)
	// FindByAmenities returns rooms that offer every listed amenity.
	FindByAmenities(ctx context.Context, amenities []string) ([]*domain.Room, error)
	// Create inserts a new room and sets its ID. It returns domain.ErrRoomExists
	// when the room number is already taken.
	Create(ctx context.Context, room *domain.Room) error
	// Save replaces the stored room with the same ID.
	Save(ctx context.Context, room *domain.Room) error
	DeleteByID(ctx context.Context, id string) error
}
