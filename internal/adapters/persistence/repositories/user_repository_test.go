package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"user-service/internal/adapters/persistence/models"
	"user-service/internal/pkg/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newUser(i int) *models.User {
	return &models.User{
		CardID:       fmt.Sprintf("card-%d", i),
		FirstName:    "first",
		SecondName:   "second",
		Type:         "user",
		Status:       1,
		Level:        1,
		DateOfBirth:  "11-11-1991",
		Age:          20 + i,
		MobileNumber: "12345678901",
		MobileBrand:  "Apple",
	}
}

func TestUserRepositoryCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testdb.Open(t))

	user := newUser(1)
	require.NoError(t, repo.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "card-1", got.CardID)
	assert.Equal(t, 21, got.Age)

	got.Age = 40
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.Age)
	assert.Equal(t, "first", got.FirstName)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.GetByID(ctx, user.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	assert.NoError(t, repo.Delete(ctx, 999))
}

func TestUserRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(testdb.Open(t))

	for i := 1; i <= 5; i++ {
		require.NoError(t, repo.Create(ctx, newUser(i)))
	}

	users, total, err := repo.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, users, 2)
	assert.Equal(t, "card-1", users[0].CardID)

	users, _, err = repo.List(ctx, 4, 2)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "card-5", users[0].CardID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
