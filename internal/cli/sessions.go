package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/dmitrijs2005/studify/internal/planner"
)

var (
	errUsageID         = errors.New("usage: <command> <session id>")
	errSessionNotFound = errors.New("session not found")
	errStoreWrite      = errors.New("could not save changes")
)

// Sessions lists sessions. The first argument may name a filter kind; any
// remaining words form the search text.
func (a *App) Sessions(ctx context.Context, args []string) error {
	f := planner.Filter{Kind: planner.KindAll}
	if len(args) > 0 {
		if k, err := planner.ParseKind(args[0]); err == nil {
			f.Kind = k
			args = args[1:]
		}
	}
	f.Search = strings.Join(args, " ")

	list := planner.Apply(a.svc.Store.ListSessions(ctx), f, a.svc.Store.Now())
	if len(list) == 0 {
		a.println("No sessions found")
		return nil
	}
	a.printSessions(list)
	return nil
}

func (a *App) printSessions(list []models.Session) {
	w := tabwriter.NewWriter(a.out, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE\tSUBJECT\tMIN")
	for _, s := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", s.ID, strings.Replace(s.Date, "T", " ", 1), s.Title, s.Subject, s.Duration)
	}
	_ = w.Flush()
}

func (a *App) readInput(base planner.Input) (planner.Input, error) {
	in := base
	var err error

	if in.Title, err = GetTextDefault(a.reader, "Title", base.Title, a.out); err != nil {
		return in, err
	}
	if in.Subject, err = GetTextDefault(a.reader, "Subject", base.Subject, a.out); err != nil {
		return in, err
	}
	if in.Date, err = GetTextDefault(a.reader, "Date (YYYY-MM-DD, empty for today)", base.Date, a.out); err != nil {
		return in, err
	}
	if in.Time, err = GetTextDefault(a.reader, "Time (HH:MM)", base.Time, a.out); err != nil {
		return in, err
	}
	if in.Duration, err = GetInt(a.reader, "Duration (minutes)", base.Duration, a.out); err != nil {
		return in, err
	}
	if in.Notes, err = GetTextDefault(a.reader, "Notes", base.Notes, a.out); err != nil {
		return in, err
	}
	return in, nil
}

func (a *App) Add(ctx context.Context, _ []string) error {
	in, err := a.readInput(planner.Input{Time: planner.DefaultTime, Duration: 60})
	if err != nil {
		return err
	}

	s, err := planner.NewSession(in, a.svc.Store.Now())
	if err != nil {
		return err
	}
	saved, ok := a.svc.Store.AddSession(ctx, s)
	if !ok {
		return errStoreWrite
	}
	a.printf("Session %s added\n", saved.ID)
	return nil
}

// Edit re-prompts every field of a session, offering current values as
// defaults.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageID
	}
	cur, ok := a.svc.Store.GetSession(ctx, args[0])
	if !ok {
		return errSessionNotFound
	}

	date, clock, _ := strings.Cut(cur.Date, "T")
	if cur.Time != "" {
		clock = cur.Time
	}
	in, err := a.readInput(planner.Input{
		Title:    cur.Title,
		Subject:  cur.Subject,
		Date:     date,
		Time:     clock,
		Duration: cur.Duration,
		Notes:    cur.Notes,
	})
	if err != nil {
		return err
	}

	patch, err := planner.Patch(in, a.svc.Store.Now())
	if err != nil {
		return err
	}
	if !a.svc.Store.UpdateSession(ctx, cur.ID, patch) {
		return errStoreWrite
	}
	a.println("Session updated")
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsageID
	}
	if !a.svc.Store.DeleteSession(ctx, args[0]) {
		return errSessionNotFound
	}
	a.println("Session deleted")
	return nil
}

// Stats prints the dashboard counters and today's sessions.
func (a *App) Stats(ctx context.Context, _ []string) error {
	now := a.svc.Store.Now()
	sessions := a.svc.Store.ListSessions(ctx)
	st := planner.ComputeStats(sessions, a.svc.Store.ListScores(ctx), now)

	a.printf("Total sessions: %d\nCompleted: %d\nUpcoming: %d\nQuizzes taken: %d\n",
		st.Total, st.Completed, st.Upcoming, st.Quizzes)

	today := planner.Today(sessions, now)
	if len(today) == 0 {
		a.println("Nothing scheduled for today")
		return nil
	}
	a.println("Today:")
	a.printSessions(today)
	return nil
}
