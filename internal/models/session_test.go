package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestSessionPatch_Apply(t *testing.T) {
	base := Session{
		ID: "1", Title: "Calculus", Subject: "Math", Date: "2026-10-20T09:00:00",
		Time: "09:00", Duration: 60, Notes: "chapter 3",
	}

	tests := []struct {
		name  string
		patch SessionPatch
		want  Session
	}{
		{"empty patch keeps everything", SessionPatch{}, base},
		{"title only", SessionPatch{Title: strPtr("X")}, func() Session { s := base; s.Title = "X"; return s }()},
		{"duration and notes", SessionPatch{Duration: intPtr(90), Notes: strPtr("")},
			func() Session { s := base; s.Duration = 90; s.Notes = ""; return s }()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Apply(base))
		})
	}
}

func TestSessionPatch_IsEmpty(t *testing.T) {
	assert.True(t, SessionPatch{}.IsEmpty())
	assert.False(t, SessionPatch{Time: strPtr("10:00")}.IsEmpty())
}

func TestSessionPatch_DecodeDistinguishesAbsentFields(t *testing.T) {
	var p SessionPatch
	require.NoError(t, json.Unmarshal([]byte(`{"title":"New","duration":0}`), &p))

	require.NotNil(t, p.Title)
	require.NotNil(t, p.Duration)
	assert.Equal(t, 0, *p.Duration)
	assert.Nil(t, p.Subject)
	assert.Nil(t, p.Notes)
}

func TestUser_ProfileDropsCredentials(t *testing.T) {
	u := User{ID: "7", FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "secret1"}

	b, err := json.Marshal(u.Profile())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"7","firstName":"Ada","lastName":"L","email":"ada@example.com"}`, string(b))
}

func TestDefaultPreferences(t *testing.T) {
	assert.Equal(t, Preferences{Theme: "light", Notifications: true, DailyGoal: 120}, DefaultPreferences())
}
