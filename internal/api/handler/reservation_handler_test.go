package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/skillstorm/hotel-management/internal/core/domain"
)

type stubReservationService struct {
	listFn    func(ctx context.Context) ([]*domain.Reservation, error)
	byRoomFn  func(ctx context.Context, roomNumber int) ([]*domain.Reservation, error)
	byUserFn  func(ctx context.Context, userID string) ([]*domain.Reservation, error)
	getByIDFn func(ctx context.Context, id string) (*domain.Reservation, error)
	createFn  func(ctx context.Context, r domain.Reservation) (*domain.Reservation, error)
	updateFn  func(ctx context.Context, id string, r domain.Reservation) (*domain.Reservation, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.listFn(ctx)
}

func (s *stubReservationService) ListByRoomNumber(ctx context.Context, roomNumber int) ([]*domain.Reservation, error) {
	return s.byRoomFn(ctx, roomNumber)
}

func (s *stubReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.byUserFn(ctx, userID)
}

func (s *stubReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubReservationService) Create(ctx context.Context, r domain.Reservation) (*domain.Reservation, error) {
	return s.createFn(ctx, r)
}

func (s *stubReservationService) Update(ctx context.Context, id string, r domain.Reservation) (*domain.Reservation, error) {
	return s.updateFn(ctx, id, r)
}

func (s *stubReservationService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestReservationHandler_Create(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{
		createFn: func(_ context.Context, r domain.Reservation) (*domain.Reservation, error) {
			r.ID = "res1"
			return &r, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/reservations/new",
		`{"id":"ignored","userId":"u1","guestName":"Ada","roomNumber":101,"checkIn":"2024-06-01","checkOut":"2024-06-04","status":"confirmed","totalPrice":389.97}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["id"] != "res1" || body["checkIn"] != "2024-06-01" || body["roomNumber"] != float64(101) {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestReservationHandler_Create_BadDate(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{})

	c, _ := newTestContext(http.MethodPost, "/reservations/new", `{"checkIn":"June 1st"}`)
	if code := httpCode(h.Create(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestReservationHandler_Update_NotFound(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{
		updateFn: func(context.Context, string, domain.Reservation) (*domain.Reservation, error) {
			return nil, domain.ErrReservationNotFound
		},
	})

	c, _ := newTestContext(http.MethodPut, "/reservations/edit/x", `{"status":"pending"}`, "id", "x")
	if err := h.Update(c); !errors.Is(err, domain.ErrReservationNotFound) {
		t.Fatalf("expected ErrReservationNotFound, got %v", err)
	}
}

func TestReservationHandler_ListByRoom(t *testing.T) {
	var got int
	h := NewReservationHandler(&stubReservationService{
		byRoomFn: func(_ context.Context, n int) ([]*domain.Reservation, error) {
			got = n
			return []*domain.Reservation{}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/reservations/room/204", "", "roomNumber", "204")
	if err := h.ListByRoom(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || got != 204 {
		t.Fatalf("unexpected result: code %d, room %d", rec.Code, got)
	}

	c, _ = newTestContext(http.MethodGet, "/reservations/room/12B", "", "roomNumber", "12B")
	if code := httpCode(h.ListByRoom(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestReservationHandler_Delete(t *testing.T) {
	h := NewReservationHandler(&stubReservationService{
		deleteFn: func(context.Context, string) error { return nil },
	})

	c, rec := newTestContext(http.MethodDelete, "/reservations/delete/res1", "", "id", "res1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
