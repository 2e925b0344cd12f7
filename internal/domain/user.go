package domain

import "time"

type User struct {
	ID         int64
	TelegramID int64
	IsAdmin    bool
	FirstName  string
	Username   string

	// Settings
	Role       string // empty = general (serialized as null to the backend)
	Profession string // empty = all professions

	LastInteraction time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RoleParam returns the role as the backend expects it: nil for the
// default "general" perspective.
func (u *User) RoleParam() *string {
	if u.Role == "" {
		return nil
	}
	r := u.Role
	return &r
}

// ProfessionParam returns the profession filter, nil when all
// professions are included.
func (u *User) ProfessionParam() *string {
	if u.Profession == "" {
		return nil
	}
	p := u.Profession
	return &p
}
