// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"herbal/internal/domain/entity"
)

// Domain-specific errors for credential persistence.
// The application layer branches on these without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account holds the requested username.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when an insert loses against an existing username.
	ErrAccountExists = errors.New("account already exists")
)

// AccountRepository is the credential store.
//
// Implementations must make Insert atomic with respect to username uniqueness:
// when callers race on the same username exactly one insert succeeds and every
// other caller receives ErrAccountExists.
type AccountRepository interface {
	// FindByUsername returns the account for username or ErrAccountNotFound.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Insert persists a new account, filling generated fields on success.
	Insert(ctx context.Context, account *entity.Account) error
}
