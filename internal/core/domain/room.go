package domain

import "time"

// Defaults applied to a room request before the room is built.
const (
	DefaultRoomType        = "STANDARD"
	DefaultRoomDescription = "No description"
	DefaultPricePerNight   = 129.99
	DefaultMaxCapacity     = 2
	DefaultBedType         = "QUEEN"
	DefaultRoomSize        = 250
)

// RoomStatusAvailable is the status every new room starts with.
const RoomStatusAvailable = "AVAILABLE"

// Room is a bookable hotel room. RoomNumber is a string so that numbers such
// as "12B" are representable.
type Room struct {
	ID            string    `json:"id"`
	RoomNumber    string    `json:"roomNumber"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	PricePerNight float64   `json:"pricePerNight"`
	MaxCapacity   int       `json:"maxCapacity"`
	BedType       string    `json:"bedType"`
	Size          int       `json:"size"`
	Floor         int       `json:"floor"`
	Amenities     []string  `json:"amenities"`
	Images        []string  `json:"images"`
	IsAvailable   bool      `json:"isAvailable"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomPatch carries a partial room update. A nil field means "keep the
// stored value".
type RoomPatch struct {
	Type          *string
	PricePerNight *float64
	Description   *string
	MaxCapacity   *int
	BedType       *string
	Size          *int
	Amenities     []string
	Images        []string
	IsAvailable   *bool
	Status        *string
}

// ApplyPatch merges the non-nil fields of p into r. Each field is handled
// independently.
func (r *Room) ApplyPatch(p RoomPatch) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.PricePerNight != nil {
		r.PricePerNight = *p.PricePerNight
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.MaxCapacity != nil {
		r.MaxCapacity = *p.MaxCapacity
	}
	if p.BedType != nil {
		r.BedType = *p.BedType
	}
	if p.Size != nil {
		r.Size = *p.Size
	}
	if p.Amenities != nil {
		r.Amenities = p.Amenities
	}
	if p.Images != nil {
		r.Images = p.Images
	}
	if p.IsAvailable != nil {
		r.IsAvailable = *p.IsAvailable
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
}
