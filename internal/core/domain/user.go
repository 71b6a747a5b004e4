package domain

import "time"

// Role labels. Roles are free-form strings; these are the ones the hotel uses.
const (
	RoleGuest    = "guest"
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// Preference keys stored in User.Preferences.
const (
	PrefLanguage      = "language"
	PrefNewsLetter    = "newsLetter"
	PrefNotifications = "notifications"
)

// DefaultLanguage is stored when a new user does not pick one.
const DefaultLanguage = "en"

// User is a hotel account: guest, employee or manager.
type User struct {
	ID                  string         `json:"id"`
	Email               string         `json:"email"`
	PasswordHash        string         `json:"-"`
	FirstName           string         `json:"firstName"`
	LastName            string         `json:"lastName"`
	PhoneNumber         string         `json:"phoneNumber"`
	Roles               []string       `json:"roles"`
	EmailVerified       bool           `json:"emailVerified"`
	Provider            string         `json:"provider,omitempty"`
	ProviderID          string         `json:"providerId,omitempty"`
	ProfileImage        string         `json:"profileImage,omitempty"`
	Preferences         map[string]any `json:"preferences"`
	SavedPaymentMethods []string       `json:"savedPaymentMethods,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// ApplyProfilePatch overwrites names and phone number where p provides them.
// Preferences are never changed here.
func (u *User) ApplyProfilePatch(p ProfilePatch) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
}
