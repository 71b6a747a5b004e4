package handler

import (
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

type createRoomRequest struct {
	RoomNumber    string   `json:"roomNumber" validate:"required"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight"`
	MaxCapacity   int      `json:"maxCapacity"`
	BedType       string   `json:"bedType"`
	Size          int      `json:"size"`
	Floor         int      `json:"floor"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
}

// toInput resolves defaults: empty strings and non-positive numbers are
// replaced, absent lists become empty.
func (r createRoomRequest) toInput() ports.CreateRoomInput {
	in := ports.CreateRoomInput{
		RoomNumber:    r.RoomNumber,
		Type:          orDefault(r.Type, domain.DefaultRoomType),
		Description:   orDefault(r.Description, domain.DefaultRoomDescription),
		PricePerNight: r.PricePerNight,
		MaxCapacity:   r.MaxCapacity,
		BedType:       orDefault(r.BedType, domain.DefaultBedType),
		Size:          r.Size,
		Floor:         r.Floor,
		Amenities:     r.Amenities,
		Images:        r.Images,
	}
	if in.PricePerNight <= 0 {
		in.PricePerNight = domain.DefaultPricePerNight
	}
	if in.MaxCapacity <= 0 {
		in.MaxCapacity = domain.DefaultMaxCapacity
	}
	if in.Size <= 0 {
		in.Size = domain.DefaultRoomSize
	}
	if in.Amenities == nil {
		in.Amenities = []string{}
	}
	if in.Images == nil {
		in.Images = []string{}
	}
	return in
}

// editRoomRequest is a partial update; omitted fields keep their values.
type editRoomRequest struct {
	Type          *string  `json:"type"`
	PricePerNight *float64 `json:"pricePerNight"`
	Description   *string  `json:"description"`
	MaxCapacity   *int     `json:"maxCapacity"`
	BedType       *string  `json:"bedType"`
	Size          *int     `json:"size"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	IsAvailable   *bool    `json:"isAvailable"`
	Status        *string  `json:"status"`
}

func (r editRoomRequest) toPatch() domain.RoomPatch {
	return domain.RoomPatch{
		Type:          r.Type,
		PricePerNight: r.PricePerNight,
		Description:   r.Description,
		MaxCapacity:   r.MaxCapacity,
		BedType:       r.BedType,
		Size:          r.Size,
		Amenities:     r.Amenities,
		Images:        r.Images,
		IsAvailable:   r.IsAvailable,
		Status:        r.Status,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
