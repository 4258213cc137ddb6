package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a unique account in the system. Journeys, shares and
// badges all reference users by id.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier.
	Name         string    // The user's display name.
	PasswordHash string    // Bcrypt hash of the user's password. Never serialized.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
