package repositories

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

func TestMemoryUserRepository_Lifecycle(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := newTestUser("mem@test.com")
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	found, err := repo.FindByEmail(ctx, "mem@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	require.NoError(t, repo.SetActiveToken(ctx, user.ID, "tok"))
	found, err = repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "tok", found.ActiveSessionToken)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	err = repo.Delete(ctx, user.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := newTestUser("copy@test.com")
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "copy@test.com")
	require.NoError(t, err)
	found.PasswordHash = "mutated"

	again, err := repo.FindByEmail(ctx, "copy@test.com")
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", again.PasswordHash, "callers must not be able to mutate stored records")
}

func TestMemoryUserRepository_IDsNeverReused(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first := newTestUser("first@test.com")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Delete(ctx, first.ID))

	second := newTestUser("second@test.com")
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}

// Two concurrent registrations of the same email must resolve to exactly
// one success and one ErrUserAlreadyExists.
func TestMemoryUserRepository_ConcurrentDuplicateRegistration(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	const attempts = 50
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.Create(ctx, newTestUser("x@y.com"))
		}()
	}
	wg.Wait()
	close(errs)

	var successes, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case err == domain.ErrUserAlreadyExists:
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes, "exactly one registration must win")
	assert.Equal(t, attempts-1, duplicates)
}
