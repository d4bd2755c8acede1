package domain

import "github.com/google/uuid"

// Caller is the authenticated subject of a request. It is resolved once per
// request by the session middleware and passed explicitly to every operation.
type Caller struct {
	ID          uuid.UUID
	Email       string
	AccessToken string
}

// IsZero returns true if no caller is authenticated
func (c Caller) IsZero() bool {
	return c.ID == uuid.Nil
}
