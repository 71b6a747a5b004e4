package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/metrics"
)

// ReservationService stores reservations as given. It does not check room
// availability or compute prices.
type ReservationService struct {
	repo   ports.ReservationRepository
	logger zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, logger: logger}
}

func (s *ReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	return s.repo.FindAll(ctx)
}

func (s *ReservationService) ListByRoomNumber(ctx context.Context, roomNumber int) ([]*domain.Reservation, error) {
	return s.repo.FindByRoomNumber(ctx, roomNumber)
}

func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*domain.Reservation, error) {
	return s.repo.FindByUserID(ctx, userID)
}

func (s *ReservationService) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists reservation with a freshly generated id.
func (s *ReservationService) Create(ctx context.Context, reservation domain.Reservation) (*domain.Reservation, error) {
	r := reservation
	r.ID = ""
	if err := s.repo.Create(ctx, &r); err != nil {
		s.logger.Error().Err(err).Msg("failed to create reservation")
		return nil, err
	}
	metrics.EntitiesCreatedTotal.WithLabelValues(metrics.EntityReservation).Inc()
	s.logger.Info().Str("reservation_id", r.ID).Int("room_number", r.RoomNumber).Msg("reservation created")
	return &r, nil
}

// Update replaces every editable field, zero values included.
func (s *ReservationService) Update(ctx context.Context, id string, replacement domain.Reservation) (*domain.Reservation, error) {
	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.ReplaceWith(replacement)

	if err := s.repo.Save(ctx, r); err != nil {
		s.logger.Error().Err(err).Str("reservation_id", id).Msg("failed to update reservation")
		return nil, err
	}
	s.logger.Info().Str("reservation_id", id).Msg("reservation updated")
	return r, nil
}

func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("reservation_id", id).Msg("failed to delete reservation")
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues(metrics.EntityReservation).Inc()
	s.logger.Info().Str("reservation_id", id).Msg("reservation deleted")
	return nil
}
