package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"herbal/internal/domain/entity"
	"herbal/internal/domain/repository"
	"herbal/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_InsertAndFind(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	account := &entity.Account{Username: "alice", PasswordHash: "hash"}
	require.NoError(t, repo.Insert(ctx, account))
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.False(t, account.CreatedAt.IsZero())

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, account.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)
}

func TestAccountRepository_FindByUsername_CaseSensitive(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, &entity.Account{Username: "alice", PasswordHash: "hash"}))

	_, err := repo.FindByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_Insert_Duplicate(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, &entity.Account{Username: "alice", PasswordHash: "first"}))

	err := repo.Insert(ctx, &entity.Account{Username: "alice", PasswordHash: "second"})
	assert.ErrorIs(t, err, repository.ErrAccountExists)

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "first", found.PasswordHash)
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()
	require.NoError(t, repo.Insert(ctx, &entity.Account{Username: "alice", PasswordHash: "hash"}))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	found.PasswordHash = "tampered"

	again, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", again.PasswordHash)
}

func TestAccountRepository_ConcurrentInsert(t *testing.T) {
	repo := NewAccountRepository()
	ctx := context.Background()

	const workers = 32
	var (
		wg        sync.WaitGroup
		created   atomic.Int32
		conflicts atomic.Int32
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Insert(ctx, &entity.Account{Username: "racer", PasswordHash: "hash"})
			switch {
			case err == nil:
				created.Add(1)
			case errors.Is(err, repository.ErrAccountExists):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), created.Load())
	assert.Equal(t, int32(workers-1), conflicts.Load())
}

func TestAccountRepository_CanceledContext(t *testing.T) {
	repo := NewAccountRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Insert(ctx, &entity.Account{Username: "alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.FindByUsername(ctx, "alice")
	assert.ErrorIs(t, err, context.Canceled)
}
