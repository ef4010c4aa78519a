package queries_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func TestGetUserQueryHandler_Handle(t *testing.T) {
	t.Run("should return hydrated user", func(t *testing.T) {
		ctx := t.Context()
		stored := user.RestoreUser(kernel.NewUUID(), "alice@example.com", "Alice", testTime)

		repo := new(MockUserRepository)
		repo.On("Get", mock.Anything, stored.ID()).Return(stored, nil).Once()

		query, err := queries.NewGetUserQuery(stored.ID())
		require.NoError(t, err)

		h := queries.NewGetUserQueryHandler(repo)
		retrieved, err := h.Handle(ctx, query)
		require.NoError(t, err)
		assert.True(t, retrieved.IsEqual(stored))
		repo.AssertExpectations(t)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()

		repo := new(MockUserRepository)
		repo.On("Get", mock.Anything, id).
			Return(nil, errs.NewObjectNotFoundError("user", id.String())).Once()

		query, err := queries.NewGetUserQuery(id)
		require.NoError(t, err)

		h := queries.NewGetUserQueryHandler(repo)
		retrieved, err := h.Handle(ctx, query)
		require.Error(t, err)
		assert.Nil(t, retrieved)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should fail validation when not constructed", func(t *testing.T) {
		ctx := t.Context()
		h := queries.NewGetUserQueryHandler(new(MockUserRepository))

		_, err := h.Handle(ctx, queries.GetUserQuery{})
		require.Error(t, err)
	})
}

func TestGetUserByEmailQueryHandler_Handle(t *testing.T) {
	t.Run("should return user on exact match", func(t *testing.T) {
		ctx := t.Context()
		stored := user.RestoreUser(kernel.NewUUID(), "alice@example.com", "Alice", testTime)

		repo := new(MockUserRepository)
		repo.On("GetByEmail", mock.Anything, "alice@example.com").Return(stored, nil).Once()

		query, err := queries.NewGetUserByEmailQuery("alice@example.com")
		require.NoError(t, err)

		h := queries.NewGetUserByEmailQueryHandler(repo)
		retrieved, err := h.Handle(ctx, query)
		require.NoError(t, err)
		assert.True(t, retrieved.IsEqual(stored))
	})

	t.Run("should reject empty email at construction", func(t *testing.T) {
		_, err := queries.NewGetUserByEmailQuery("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})
}
