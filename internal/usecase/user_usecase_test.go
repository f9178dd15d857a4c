package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furnimarket/internal/domain/entity"
)

func TestEnsureProfileCreatesOnFirstSignIn(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewUserUseCase(repo)

	user, err := uc.EnsureProfile(context.Background(), "uid-1", "andi@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "uid-1", user.ID)
	assert.Equal(t, "andi", user.Username)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Equal(t, entity.UserActive, user.Status)
}

func TestEnsureProfileReturnsExistingRow(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID:       "uid-1",
		Username: "andi_custom",
		Email:    "andi@example.com",
		Role:     entity.RoleAdmin,
		Status:   entity.UserActive,
	})
	uc := NewUserUseCase(repo)

	user, err := uc.EnsureProfile(context.Background(), "uid-1", "andi@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "andi_custom", user.Username)
	assert.Equal(t, entity.RoleAdmin, user.Role)
}

func TestEnsureProfileCarriesUsernameAcrossReRegistration(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID:        "uid-old",
		Username:  "vintage_hunter",
		Email:     "budi@example.com",
		Role:      entity.RoleCustomer,
		Status:    entity.UserActive,
		CreatedAt: time.Now().Add(-24 * time.Hour),
	})
	uc := NewUserUseCase(repo)

	user, err := uc.EnsureProfile(context.Background(), "uid-new", "budi@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "uid-new", user.ID)
	assert.Equal(t, "vintage_hunter", user.Username, "username follows the re-registered email")

	// The old row is untouched; the new UID owns its own profile.
	old, err := repo.GetByID(context.Background(), "uid-old")
	require.NoError(t, err)
	assert.Equal(t, "vintage_hunter", old.Username)
}

func TestEnsureProfileExplicitUsernameWins(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{
		ID:       "uid-old",
		Username: "vintage_hunter",
		Email:    "budi@example.com",
	})
	uc := NewUserUseCase(repo)

	user, err := uc.EnsureProfile(context.Background(), "uid-new", "budi@example.com", "budi2026")
	require.NoError(t, err)
	assert.Equal(t, "budi2026", user.Username)
}
