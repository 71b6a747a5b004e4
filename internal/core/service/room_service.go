package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/metrics"
)

const roomCachePrefix = "room:"

// RoomService implements room use cases. Lookups by id go through the cache
// when one is configured.
type RoomService struct {
	repo   ports.RoomRepository
	cache  ports.Cache
	logger zerolog.Logger
}

// NewRoomService builds a RoomService. cache may be nil.
func NewRoomService(repo ports.RoomRepository, cache ports.Cache, logger zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, cache: cache, logger: logger}
}

func (s *RoomService) List(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.FindAll(ctx)
}

func (s *RoomService) ListByType(ctx context.Context, roomType string) ([]*domain.Room, error) {
	return s.repo.FindByType(ctx, roomType)
}

func (s *RoomService) ListByAmenities(ctx context.Context, amenities []string) ([]*domain.Room, error) {
	return s.repo.FindByAmenities(ctx, amenities)
}

// GetByID returns the room with the given id, consulting the cache first.
func (s *RoomService) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	if room, ok := s.cached(ctx, id); ok {
		return room, nil
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.store(ctx, room)
	return room, nil
}

func (s *RoomService) GetByNumber(ctx context.Context, roomNumber string) (*domain.Room, error) {
	return s.repo.FindByRoomNumber(ctx, roomNumber)
}

// Create persists a new available room. The room number must be unused.
func (s *RoomService) Create(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	_, err := s.repo.FindByRoomNumber(ctx, input.RoomNumber)
	switch {
	case err == nil:
		metrics.ConflictsTotal.WithLabelValues(metrics.EntityRoom).Inc()
		return nil, domain.ErrRoomExists
	case !errors.Is(err, domain.ErrRoomNotFound):
		return nil, fmt.Errorf("check room number: %w", err)
	}

	now := time.Now().UTC()
	room := &domain.Room{
		RoomNumber:    input.RoomNumber,
		Type:          input.Type,
		Description:   input.Description,
		PricePerNight: input.PricePerNight,
		MaxCapacity:   input.MaxCapacity,
		BedType:       input.BedType,
		Size:          input.Size,
		Floor:         input.Floor,
		Amenities:     nonNil(input.Amenities),
		Images:        nonNil(input.Images),
		IsAvailable:   true,
		Status:        domain.RoomStatusAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Create(ctx, room); err != nil {
		if errors.Is(err, domain.ErrRoomExists) {
			metrics.ConflictsTotal.WithLabelValues(metrics.EntityRoom).Inc()
		} else {
			s.logger.Error().Err(err).Str("room_number", room.RoomNumber).Msg("failed to create room")
		}
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(metrics.EntityRoom).Inc()
	s.logger.Info().Str("room_id", room.ID).Str("room_number", room.RoomNumber).Msg("room created")
	return room, nil
}

// Edit merges patch into the stored room. Fields absent from patch keep their
// stored values.
func (s *RoomService) Edit(ctx context.Context, id string, patch domain.RoomPatch) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	room.ApplyPatch(patch)
	room.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, room); err != nil {
		s.logger.Error().Err(err).Str("room_id", id).Msg("failed to update room")
		return nil, err
	}
	s.evict(ctx, id)

	s.logger.Info().Str("room_id", id).Msg("room updated")
	return room, nil
}

func (s *RoomService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("room_id", id).Msg("failed to delete room")
		return err
	}
	s.evict(ctx, id)

	metrics.EntitiesDeletedTotal.WithLabelValues(metrics.EntityRoom).Inc()
	s.logger.Info().Str("room_id", id).Msg("room deleted")
	return nil
}

func (s *RoomService) cached(ctx context.Context, id string) (*domain.Room, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, ok := s.cache.Get(ctx, roomCachePrefix+id)
	if !ok {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	var room domain.Room
	if err := json.Unmarshal(raw, &room); err != nil {
		s.logger.Warn().Err(err).Str("room_id", id).Msg("discarding unreadable cache entry")
		s.cache.Delete(ctx, roomCachePrefix+id)
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return &room, true
}

func (s *RoomService) store(ctx context.Context, room *domain.Room) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(room)
	if err != nil {
		return
	}
	s.cache.Set(ctx, roomCachePrefix+room.ID, raw)
}

func (s *RoomService) evict(ctx context.Context, id string) {
	if s.cache != nil {
		s.cache.Delete(ctx, roomCachePrefix+id)
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
