package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

type stubUserService struct {
	listFn    func(ctx context.Context) ([]*domain.User, error)
	byEmailFn func(ctx context.Context, email string) (*domain.User, error)
	byRoleFn  func(ctx context.Context, role string) ([]*domain.User, error)
	guestsFn  func(ctx context.Context) ([]*domain.User, error)
	createFn  func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	editFn    func(ctx context.Context, id string, p domain.ProfilePatch) (*domain.User, error)
	deleteFn  func(ctx context.Context, id string) error
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.byEmailFn(ctx, email)
}

func (s *stubUserService) GetByRole(ctx context.Context, role string) ([]*domain.User, error) {
	return s.byRoleFn(ctx, role)
}

func (s *stubUserService) Guests(ctx context.Context) ([]*domain.User, error) {
	return s.guestsFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) EditProfile(ctx context.Context, id string, p domain.ProfilePatch) (*domain.User, error) {
	return s.editFn(ctx, id, p)
}

func (s *stubUserService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestUserHandler_Create_Defaults(t *testing.T) {
	var got ports.CreateUserInput
	h := NewUserHandler(&stubUserService{
		createFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			got = in
			return &domain.User{
				ID:           "u1",
				Email:        in.Email,
				PasswordHash: "hashed",
				Roles:        in.Roles,
				Preferences:  map[string]any{domain.PrefLanguage: in.Language},
			}, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/users/new", `{"email":"ada@example.com","password":"pw","roles":[]}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Language != domain.DefaultLanguage {
		t.Errorf("language: %q", got.Language)
	}
	if len(got.Roles) != 1 || got.Roles[0] != domain.RoleGuest {
		t.Errorf("roles: %v", got.Roles)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, leaked := body["passwordHash"]; leaked {
		t.Error("password hash must not be serialized")
	}
	if _, leaked := body["PasswordHash"]; leaked {
		t.Error("password hash must not be serialized")
	}
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodPost, "/users/new", `{"email":"nope"}`)
	if code := httpCode(h.Create(c)); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestUserHandler_Create_Conflict(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	})

	c, _ := newTestContext(http.MethodPost, "/users/new", `{"email":"ada@example.com"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUserHandler_GetByEmail(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		byEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email != "ada@example.com" {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: "u1", Email: email}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/users?email=ada@example.com", "")
	if err := h.GetByEmail(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	c, _ = newTestContext(http.MethodGet, "/users?email=x@example.com", "")
	if err := h.GetByEmail(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	c, _ = newTestContext(http.MethodGet, "/users", "")
	if code := httpCode(h.GetByEmail(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUserHandler_GetByRole_RequiresRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newTestContext(http.MethodGet, "/users/role", "")
	if code := httpCode(h.GetByRole(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUserHandler_Edit(t *testing.T) {
	var got domain.ProfilePatch
	h := NewUserHandler(&stubUserService{
		editFn: func(_ context.Context, id string, p domain.ProfilePatch) (*domain.User, error) {
			got = p
			return &domain.User{ID: id}, nil
		},
	})

	c, rec := newTestContext(http.MethodPut, "/users/edit/u1", `{"lastName":"Byron"}`, "id", "u1")
	if err := h.Edit(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.LastName == nil || *got.LastName != "Byron" || got.FirstName != nil || got.PhoneNumber != nil {
		t.Errorf("unexpected patch: %+v", got)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(context.Context, string) error { return nil },
	})

	c, rec := newTestContext(http.MethodDelete, "/users/u1", "", "id", "u1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}
