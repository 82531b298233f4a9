package identity

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"retify/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	repo := NewMemory()
	created, err := repo.Create(context.Background(), domain.User{Email: "a@b.c", Name: "A"})
	require.NoError(t, err)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Equal(t, "A", got.Name)

	_, err = repo.GetByEmail(context.Background(), "missing@b.c")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmailKeyIsCaseSensitive(t *testing.T) {
	repo := NewMemory()
	_, err := repo.Create(context.Background(), domain.User{Email: "a@b.c"})
	require.NoError(t, err)

	_, err = repo.GetByEmail(context.Background(), "A@B.C")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDuplicateCreateKeepsOriginal(t *testing.T) {
	repo := NewMemory()
	_, err := repo.Create(context.Background(), domain.User{Email: "a@b.c", Name: "First"})
	require.NoError(t, err)

	_, err = repo.Create(context.Background(), domain.User{Email: "a@b.c", Name: "Second"})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	got, err := repo.GetByEmail(context.Background(), "a@b.c")
	require.NoError(t, err)
	require.Equal(t, "First", got.Name)
}

func TestConcurrentCreateAdmitsExactlyOne(t *testing.T) {
	repo := NewMemory()

	const workers = 20
	var created int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := repo.Create(context.Background(), domain.User{Email: "race@b.c"}); err == nil {
				atomic.AddInt64(&created, 1)
			}
		}()
	}
	wg.Wait()

	require.EqualValues(t, 1, created)
}
