package handler

import "github.com/skillstorm/hotel-management/internal/core/domain"

// reservationRequest is used for both create and full update. Dates use the
// YYYY-MM-DD layout; any id in the body is ignored.
type reservationRequest struct {
	UserID     string      `json:"userId"`
	GuestName  string      `json:"guestName"`
	RoomNumber int         `json:"roomNumber"`
	CheckIn    domain.Date `json:"checkIn" swaggertype:"string" example:"2024-06-01"`
	CheckOut   domain.Date `json:"checkOut" swaggertype:"string" example:"2024-06-04"`
	Status     string      `json:"status"`
	TotalPrice float64     `json:"totalPrice"`
}

func (r reservationRequest) toDomain() domain.Reservation {
	return domain.Reservation{
		UserID:     r.UserID,
		GuestName:  r.GuestName,
		RoomNumber: r.RoomNumber,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Status:     r.Status,
		TotalPrice: r.TotalPrice,
	}
}
