package planner

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func TestNewSession(t *testing.T) {
	s, err := NewSession(Input{Title: " Calculus ", Subject: "Math", Date: "2026-10-20", Time: "14:30", Duration: 45, Notes: " ch. 4 "}, now)
	require.NoError(t, err)
	assert.Equal(t, models.Session{
		Title: "Calculus", Subject: "Math", Date: "2026-10-20T14:30", Time: "14:30", Duration: 45, Notes: "ch. 4",
	}, s)
}

func TestNewSession_Defaults(t *testing.T) {
	s, err := NewSession(Input{Title: "Reading", Duration: 30}, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-17T09:00", s.Date)
	assert.Equal(t, DefaultTime, s.Time)
}

func TestNewSession_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{"no title", Input{Duration: 10}, ErrTitleRequired},
		{"zero duration", Input{Title: "x"}, ErrInvalidDuration},
		{"bad date", Input{Title: "x", Duration: 10, Date: "20/10/2026"}, ErrInvalidDate},
		{"bad time", Input{Title: "x", Duration: 10, Time: "25:00"}, ErrInvalidTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSession(tt.in, now)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPatch_CoversEveryField(t *testing.T) {
	p, err := Patch(Input{Title: "New", Date: "2026-11-01", Time: "08:15", Duration: 20}, now)
	require.NoError(t, err)

	base := models.Session{ID: "1", Title: "Old", Subject: "S", Date: "2026-10-01T09:00", Time: "09:00", Duration: 60, Notes: "n"}
	got := p.Apply(base)
	assert.Equal(t, models.Session{ID: "1", Title: "New", Date: "2026-11-01T08:15", Time: "08:15", Duration: 20}, got)
}

func TestDatePredicates(t *testing.T) {
	tests := []struct {
		date                  string
		today, future, past bool
	}{
		{"2026-10-17T09:00", true, false, false},
		{"2026-10-17T18:00", true, true, false},
		{"2026-10-18T09:00", false, true, false},
		{"2026-10-16T23:59", false, false, true},
		{"2026-10-17T12:00:00Z", true, false, false},
		{"garbage", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.today, IsToday(tt.date, now), "today")
			assert.Equal(t, tt.future, IsFuture(tt.date, now), "future")
			assert.Equal(t, tt.past, IsPast(tt.date, now), "past")
		})
	}
}
