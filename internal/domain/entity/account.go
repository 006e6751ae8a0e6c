// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a stored credential: a unique username and the adaptive hash of its password.
// The plaintext password never reaches this type.
type Account struct {
	ID           uuid.UUID // Storage generated identifier; never exposed over HTTP.
	Username     string    // Exact-match unique identity.
	PasswordHash string    // bcrypt output, salt and cost included.
	CreatedAt    time.Time
}
