package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

type stubUserRepo struct {
	byID    map[string]*domain.User
	seq     int
	creates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Roles = slices.Clone(u.Roles)
	c.Preferences = make(map[string]any, len(u.Preferences))
	for k, v := range u.Preferences {
		c.Preferences[k] = v
	}
	return &c
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// FindByRole mirrors the case-insensitive substring match of the Mongo query.
func (r *stubUserRepo) FindByRole(_ context.Context, role string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.byID {
		for _, have := range u.Roles {
			if strings.Contains(strings.ToLower(have), strings.ToLower(role)) {
				out = append(out, cloneUser(u))
				break
			}
		}
	}
	return out, nil
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) error {
	r.creates++
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) Save(_ context.Context, u *domain.User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.byID[u.ID] = cloneUser(u)
	return nil
}

func (r *stubUserRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

func userInput(email string) ports.CreateUserInput {
	return ports.CreateUserInput{
		Email:       email,
		Password:    "s3cret-pass",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		PhoneNumber: "555-0100",
		Language:    "fr",
		NewsLetter:  true,
	}
}

func TestUserService_Create_DefaultsRolesToGuest(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, discardLogger)

	input := userInput("ada@example.com")
	input.Roles = []string{}

	user, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(user.Roles, []string{domain.RoleGuest}) {
		t.Errorf("expected [guest], got %v", user.Roles)
	}
}

func TestUserService_Create_KeepsGivenRoles(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), bcrypt.MinCost, discardLogger)

	input := userInput("staff@example.com")
	input.Roles = []string{domain.RoleEmployee, domain.RoleManager}

	user, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(user.Roles, input.Roles) {
		t.Errorf("roles changed: %v", user.Roles)
	}
}

func TestUserService_Create_BuildsPreferences(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), bcrypt.MinCost, discardLogger)

	user, err := svc.Create(context.Background(), userInput("prefs@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Preferences[domain.PrefLanguage] != "fr" {
		t.Errorf("language: %v", user.Preferences[domain.PrefLanguage])
	}
	if user.Preferences[domain.PrefNewsLetter] != true {
		t.Errorf("newsLetter: %v", user.Preferences[domain.PrefNewsLetter])
	}
	if user.Preferences[domain.PrefNotifications] != false {
		t.Errorf("notifications: %v", user.Preferences[domain.PrefNotifications])
	}
}

func TestUserService_Create_DefaultLanguage(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), bcrypt.MinCost, discardLogger)

	input := userInput("lang@example.com")
	input.Language = ""

	user, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Preferences[domain.PrefLanguage] != domain.DefaultLanguage {
		t.Errorf("expected %q, got %v", domain.DefaultLanguage, user.Preferences[domain.PrefLanguage])
	}
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, discardLogger)

	user, err := svc.Create(context.Background(), userInput("hash@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored := repo.byID[user.ID]
	if stored.PasswordHash == "s3cret-pass" {
		t.Fatal("password stored in clear text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")); err != nil {
		t.Errorf("hash does not match password: %v", err)
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, discardLogger)

	if _, err := svc.Create(context.Background(), userInput("dup@example.com")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := svc.Create(context.Background(), userInput("dup@example.com"))
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if repo.creates != 1 {
		t.Errorf("expected exactly 1 write, got %d", repo.creates)
	}
}

func TestUserService_GetByEmail_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), bcrypt.MinCost, discardLogger)

	_, err := svc.GetByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_GetByRole_MatchesLegacyLabels(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, discardLogger)

	legacy := userInput("legacy@example.com")
	legacy.Roles = []string{"ROLE_GUEST"}
	staff := userInput("staff@example.com")
	staff.Roles = []string{domain.RoleEmployee}
	_, _ = svc.Create(context.Background(), userInput("guest@example.com"))
	_, _ = svc.Create(context.Background(), legacy)
	_, _ = svc.Create(context.Background(), staff)

	guests, err := svc.Guests(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(guests) != 2 {
		t.Errorf("expected 2 guests, got %d", len(guests))
	}

	employees, _ := svc.GetByRole(context.Background(), "EMPLOYEE")
	if len(employees) != 1 || employees[0].Email != "staff@example.com" {
		t.Errorf("expected staff only, got %v", employees)
	}
}

func TestUserService_EditProfile_LeavesPreferences(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, discardLogger)
	created, _ := svc.Create(context.Background(), userInput("edit@example.com"))

	updated, err := svc.EditProfile(context.Background(), created.ID, domain.ProfilePatch{
		FirstName: strPtr("Augusta"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.FirstName != "Augusta" {
		t.Errorf("first name not updated: %q", updated.FirstName)
	}
	if updated.LastName != "Lovelace" || updated.PhoneNumber != "555-0100" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
	stored := repo.byID[created.ID]
	if stored.Preferences[domain.PrefLanguage] != "fr" {
		t.Errorf("preferences changed: %v", stored.Preferences)
	}
}

func TestUserService_EditProfile_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), bcrypt.MinCost, discardLogger)

	_, err := svc.EditProfile(context.Background(), "missing", domain.ProfilePatch{})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Delete_Unknown(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, bcrypt.MinCost, discardLogger)
	_, _ = svc.Create(context.Background(), userInput("keep@example.com"))

	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(repo.byID) != 1 {
		t.Errorf("store changed: %d users", len(repo.byID))
	}
}
