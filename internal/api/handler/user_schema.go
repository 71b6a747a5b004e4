package handler

import (
	"github.com/skillstorm/hotel-management/internal/core/domain"
	"github.com/skillstorm/hotel-management/internal/core/ports"
)

// createUserRequest is the registration payload. bcrypt accepts at most 72
// bytes of password, so the limit is on the encoded length.
type createUserRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"maxbytes=72"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	PhoneNumber   string   `json:"phoneNumber"`
	Roles         []string `json:"roles" validate:"dive,required"`
	Language      string   `json:"language"`
	NewsLetter    bool     `json:"newsLetter"`
	Notifications bool     `json:"notifications"`
}

func (r createUserRequest) toInput() ports.CreateUserInput {
	roles := r.Roles
	if len(roles) == 0 {
		roles = []string{domain.RoleGuest}
	}
	return ports.CreateUserInput{
		Email:         r.Email,
		Password:      r.Password,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		PhoneNumber:   r.PhoneNumber,
		Roles:         roles,
		Language:      orDefault(r.Language, domain.DefaultLanguage),
		NewsLetter:    r.NewsLetter,
		Notifications: r.Notifications,
	}
}

type editUserRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
}

func (r editUserRequest) toPatch() domain.ProfilePatch {
	return domain.ProfilePatch{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		PhoneNumber: r.PhoneNumber,
	}
}
