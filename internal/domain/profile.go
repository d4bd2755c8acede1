package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the application-level user record keyed by the identity subject
type Profile struct {
	ID        uuid.UUID
	Email     string
	FullName  *string
	Phone     *string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the full name, falling back to the email
func (p *Profile) DisplayName() string {
	if p.FullName != nil && *p.FullName != "" {
		return *p.FullName
	}
	return p.Email
}

// ContactUpdate holds the profile fields a user may edit
type ContactUpdate struct {
	FullName *string
	Phone    *string
}
