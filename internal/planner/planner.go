// Package planner holds the pure queries over study sessions: building a
// session from form input, filtering and sorting the list, and the
// dashboard counters. Every function takes the current time explicitly.
package planner

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/studify/internal/models"
)

const (
	DefaultTime = "09:00"
	dateLayout  = "2006-01-02"
	timeLayout  = "15:04"
)

var (
	ErrTitleRequired   = errors.New("session title is required")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrInvalidTime     = errors.New("time must be HH:MM")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrUnknownFilter   = errors.New("unknown session filter")
)

// Input is the add/edit form for a session.
type Input struct {
	Title    string `json:"title"`
	Subject  string `json:"subject"`
	Date     string `json:"date"` // YYYY-MM-DD; empty means today
	Time     string `json:"time"` // HH:MM; empty means DefaultTime
	Duration int    `json:"duration"`
	Notes    string `json:"notes"`
}

// NewSession validates in and composes the combined date-time. The id is
// left for the store to assign.
func NewSession(in Input, now time.Time) (models.Session, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Session{}, ErrTitleRequired
	}
	if in.Duration <= 0 {
		return models.Session{}, ErrInvalidDuration
	}

	date := strings.TrimSpace(in.Date)
	if date == "" {
		date = now.Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return models.Session{}, fmt.Errorf("%w: %q", ErrInvalidDate, in.Date)
	}

	clock := strings.TrimSpace(in.Time)
	if clock == "" {
		clock = DefaultTime
	}
	if _, err := time.Parse(timeLayout, clock); err != nil {
		return models.Session{}, fmt.Errorf("%w: %q", ErrInvalidTime, in.Time)
	}

	return models.Session{
		Title:    title,
		Subject:  strings.TrimSpace(in.Subject),
		Date:     date + "T" + clock,
		Time:     clock,
		Duration: in.Duration,
		Notes:    strings.TrimSpace(in.Notes),
	}, nil
}

// Patch turns a validated edit form into a full-field patch.
func Patch(in Input, now time.Time) (models.SessionPatch, error) {
	s, err := NewSession(in, now)
	if err != nil {
		return models.SessionPatch{}, err
	}
	return models.SessionPatch{
		Title:    &s.Title,
		Subject:  &s.Subject,
		Date:     &s.Date,
		Time:     &s.Time,
		Duration: &s.Duration,
		Notes:    &s.Notes,
	}, nil
}

// SessionTime parses a stored session date in loc. It accepts the form
// layout with or without seconds, and RFC 3339.
func SessionTime(date string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339, dateLayout} {
		if t, err := time.ParseInLocation(layout, date, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsToday, IsFuture and IsPast compare against now in now's location. A
// session earlier today is neither past nor future.
func IsToday(date string, now time.Time) bool {
	t, ok := SessionTime(date, now.Location())
	if !ok {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func IsFuture(date string, now time.Time) bool {
	t, ok := SessionTime(date, now.Location())
	return ok && t.After(now)
}

func IsPast(date string, now time.Time) bool {
	t, ok := SessionTime(date, now.Location())
	return ok && t.Before(startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SortByDate orders sessions chronologically in place. Unparseable dates
// go last, keeping their relative order.
func SortByDate(sessions []models.Session, loc *time.Location) {
	slices.SortStableFunc(sessions, func(a, b models.Session) int {
		ta, oka := SessionTime(a.Date, loc)
		tb, okb := SessionTime(b.Date, loc)
		switch {
		case oka && okb:
			return ta.Compare(tb)
		case oka:
			return -1
		case okb:
			return 1
		}
		return 0
	})
}
