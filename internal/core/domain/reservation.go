package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of reservation dates.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time of day, serialized as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate returns the given day at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses s in DateLayout.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a %s string: %w", DateLayout, err)
	}
	if s == nil || *s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(*s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Reservation books a room for a guest. RoomNumber is an integer here even
// though Room.RoomNumber is a string; the two are not reconciled.
type Reservation struct {
	ID         string  `json:"id"`
	UserID     string  `json:"userId"`
	GuestName  string  `json:"guestName"`
	RoomNumber int     `json:"roomNumber"`
	CheckIn    Date    `json:"checkIn"`
	CheckOut   Date    `json:"checkOut"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"totalPrice"`
}

// ReplaceWith overwrites every editable field from src, zero values included.
// ID and UserID are kept.
func (r *Reservation) ReplaceWith(src Reservation) {
	r.GuestName = src.GuestName
	r.RoomNumber = src.RoomNumber
	r.CheckIn = src.CheckIn
	r.CheckOut = src.CheckOut
	r.Status = src.Status
	r.TotalPrice = src.TotalPrice
}
