// Package memory holds process-local repositories used when no database is configured
// and by tests that need real uniqueness semantics without PostgreSQL.
package memory

import (
	"context"
	"sync"
	"time"

	"herbal/internal/domain/entity"
	"herbal/internal/domain/repository"

	"github.com/google/uuid"
)

// accountRepository keys accounts by exact username.
type accountRepository struct {
	mu       sync.RWMutex
	accounts map[string]entity.Account
}

// NewAccountRepository creates an empty in-memory account store.
func NewAccountRepository() repository.AccountRepository {
	return &accountRepository{
		accounts: make(map[string]entity.Account),
	}
}

func (repo *accountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.mu.RLock()
	account, ok := repo.accounts[username]
	repo.mu.RUnlock()

	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &account, nil
}

// Insert checks and writes under one lock so concurrent inserts of a username
// yield exactly one winner.
func (repo *accountRepository) Insert(ctx context.Context, account *entity.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.accounts[account.Username]; exists {
		return repository.ErrAccountExists
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	repo.accounts[account.Username] = *account

	return nil
}
