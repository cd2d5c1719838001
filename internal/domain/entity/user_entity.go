package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash and must never be serialized in responses.
type User struct {
	ID        string
	Email     string
	Password  string
	Name      string
	Role      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Public returns the response-safe view of the user.
func (u *User) Public() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"role":       u.Role,
		"avatar_url": u.AvatarURL,
		"createdAt":  u.CreatedAt,
	}
}
