package store

import (
	"context"

	"github.com/dmitrijs2005/studify/internal/models"
)

// CurrentUser returns the signed-in profile, if any.
func (s *Store) CurrentUser(ctx context.Context) (models.User, bool) {
	var u models.User
	if !s.Get(ctx, KeyUser, &u) {
		return models.User{}, false
	}
	return u, true
}

// SetCurrentUser stores the profile of u; credentials are not copied.
func (s *Store) SetCurrentUser(ctx context.Context, u models.User) bool {
	return s.Set(ctx, KeyUser, u.Profile())
}

func (s *Store) ClearCurrentUser(ctx context.Context) bool {
	return s.Remove(ctx, KeyUser)
}

// IsAuthenticated is true only when the auth flag holds JSON true.
func (s *Store) IsAuthenticated(ctx context.Context) bool {
	var flag bool
	return s.Get(ctx, KeyAuth, &flag) && flag
}

// SetAuthenticated writes the flag. Clearing it removes the key.
func (s *Store) SetAuthenticated(ctx context.Context, status bool) bool {
	if !status {
		return s.Remove(ctx, KeyAuth)
	}
	return s.Set(ctx, KeyAuth, true)
}

// ListUsers returns every registered account in signup order.
func (s *Store) ListUsers(ctx context.Context) []models.User {
	return listRecords[models.User](ctx, s, KeyUsers)
}

// AddUser stamps id and createdAt, then appends u to the registry.
// Uniqueness is the caller's concern.
func (s *Store) AddUser(ctx context.Context, u models.User) (models.User, bool) {
	u.ID = s.newID()
	u.CreatedAt = s.now().UTC()

	if !s.appendRecord(ctx, KeyUsers, u) {
		return models.User{}, false
	}
	return u, true
}
