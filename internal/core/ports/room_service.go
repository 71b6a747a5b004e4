package ports

import (
	"context"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

// CreateRoomInput is a room request with every default already resolved.
type CreateRoomInput struct {
	RoomNumber    string
	Type          string
	Description   string
	PricePerNight float64
	MaxCapacity   int
	BedType       string
	Size          int
	Floor         int
	Amenities     []string
	Images        []string
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	List(ctx context.Context) ([]*domain.Room, error)
	ListByType(ctx context.Context, roomType string) ([]*domain.Room, error)
	ListByAmenities(ctx context.Context, amenities []string) ([]*domain.Room, error)
	GetByID(ctx context.Context, id string) (*domain.Room, error)
	GetByNumber(ctx context.Context, roomNumber string) (*domain.Room, error)
	Create(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	Edit(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error)
	Delete(ctx context.Context, id string) error
}
