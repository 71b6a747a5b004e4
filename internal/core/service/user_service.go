package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
	"github.com/skillstorm/hotel-management/internal/metrics"
)

// UserService implements user registration and profile management.
type UserService struct {
	repo       ports.UserRepository
	bcryptCost int
	logger     zerolog.Logger
}

func NewUserService(repo ports.UserRepository, bcryptCost int, logger zerolog.Logger) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) GetByRole(ctx context.Context, role string) ([]*domain.User, error) {
	return s.repo.FindByRole(ctx, role)
}

func (s *UserService) Guests(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindByRole(ctx, domain.RoleGuest)
}

// Create registers a new user. The email must not be registered yet.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	_, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		metrics.ConflictsTotal.WithLabelValues(metrics.EntityUser).Inc()
		return nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("check email: %w", err)
	}

	var hash []byte
	if input.Password != "" {
		hash, err = bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []string{domain.RoleGuest}
	}
	language := input.Language
	if language == "" {
		language = domain.DefaultLanguage
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		Roles:        roles,
		Preferences: map[string]any{
			domain.PrefLanguage:      language,
			domain.PrefNewsLetter:    input.NewsLetter,
			domain.PrefNotifications: input.Notifications,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.ConflictsTotal.WithLabelValues(metrics.EntityUser).Inc()
		} else {
			s.logger.Error().Err(err).Msg("failed to create user")
		}
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues(metrics.EntityUser).Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user created")
	return user, nil
}

// EditProfile updates names and phone number. Preferences stay as stored.
func (s *UserService) EditProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.ApplyProfilePatch(patch)
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return nil, err
	}
	s.logger.Info().Str("user_id", id).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}
	metrics.EntitiesDeletedTotal.WithLabelValues(metrics.EntityUser).Inc()
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}
