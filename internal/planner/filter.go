package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/studify/internal/models"
)

type Kind string

const (
	KindAll      Kind = "all"
	KindUpcoming Kind = "upcoming"
	KindToday    Kind = "today"
	KindPast     Kind = "past"
)

// ParseKind accepts the filter names case-insensitively; empty means all.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return KindAll, nil
	case KindAll, KindUpcoming, KindToday, KindPast:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, s)
	}
}

type Filter struct {
	Kind   Kind
	Search string
}

// Apply returns the sessions matching f, sorted by date. Upcoming includes
// everything today. Search matches title or subject, ignoring case.
func Apply(sessions []models.Session, f Filter, now time.Time) []models.Session {
	term := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Session, 0, len(sessions))
	for _, s := range sessions {
		if !matchKind(s, f.Kind, now) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(s.Title), term) &&
			!strings.Contains(strings.ToLower(s.Subject), term) {
			continue
		}
		out = append(out, s)
	}
	SortByDate(out, now.Location())
	return out
}

func matchKind(s models.Session, k Kind, now time.Time) bool {
	switch k {
	case KindUpcoming:
		return IsFuture(s.Date, now) || IsToday(s.Date, now)
	case KindToday:
		return IsToday(s.Date, now)
	case KindPast:
		return IsPast(s.Date, now)
	default:
		return true
	}
}

// Today lists today's sessions in time order.
func Today(sessions []models.Session, now time.Time) []models.Session {
	return Apply(sessions, Filter{Kind: KindToday}, now)
}

// Stats are the dashboard counters.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Upcoming  int `json:"upcoming"`
	Quizzes   int `json:"quizzes"`
}

// ComputeStats counts sessions before today as completed and sessions from
// today on as upcoming.
func ComputeStats(sessions []models.Session, scores []models.Score, now time.Time) Stats {
	st := Stats{Total: len(sessions), Quizzes: len(scores)}
	for _, s := range sessions {
		if IsPast(s.Date, now) {
			st.Completed++
		}
		if IsFuture(s.Date, now) || IsToday(s.Date, now) {
			st.Upcoming++
		}
	}
	return st
}
