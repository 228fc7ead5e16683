package store

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/dmitrijs2005/studify/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleUser() models.User {
	return models.User{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "engine1"}
}

func TestCurrentUser_StoresProfileOnly(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryBackend(0)
	s := newTestStore(t, mem)

	_, ok := s.CurrentUser(ctx)
	assert.False(t, ok)

	u := sampleUser()
	u.ID = "u1"
	require.True(t, s.SetCurrentUser(ctx, u))

	got, ok := s.CurrentUser(ctx)
	require.True(t, ok)
	assert.Equal(t, "u1", got.ID)
	assert.Empty(t, got.Password)

	raw, err := mem.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "engine1")

	require.True(t, s.ClearCurrentUser(ctx))
	_, ok = s.CurrentUser(ctx)
	assert.False(t, ok)
}

func TestAuthFlag_IndependentOfCurrentUser(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryBackend(0)
	s := newTestStore(t, mem)

	require.True(t, s.SetCurrentUser(ctx, sampleUser()))
	require.True(t, s.SetAuthenticated(ctx, true))
	assert.True(t, s.IsAuthenticated(ctx))

	require.True(t, s.SetAuthenticated(ctx, false))
	assert.False(t, s.IsAuthenticated(ctx))
	_, ok := s.CurrentUser(ctx)
	assert.True(t, ok, "clearing the flag must not touch the user record")

	// only a literal true counts
	require.NoError(t, mem.Set(ctx, KeyAuth, []byte(`"true"`)))
	assert.False(t, s.IsAuthenticated(ctx))
}

func TestAddUser_StampsAndAppends(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, storage.NewMemoryBackend(0))

	assert.Empty(t, s.ListUsers(ctx))

	first, ok := s.AddUser(ctx, sampleUser())
	require.True(t, ok)
	assert.Equal(t, "id-1", first.ID)
	assert.Equal(t, fixedNow, first.CreatedAt)

	second := sampleUser()
	second.Email = "grace@example.com"
	_, ok = s.AddUser(ctx, second)
	require.True(t, ok)

	users := s.ListUsers(ctx)
	require.Len(t, users, 2)
	assert.Equal(t, "engine1", users[0].Password)
	assert.Equal(t, "grace@example.com", users[1].Email)
}
