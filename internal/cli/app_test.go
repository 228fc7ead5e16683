package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/studify/internal/accounts"
	"github.com/dmitrijs2005/studify/internal/backup"
	"github.com/dmitrijs2005/studify/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_SignupPlanAndQuiz(t *testing.T) {
	replOut := captureREPL(t)
	svc := newTestServices(t)
	ctx := context.Background()

	a, out := newTestApp(t, svc,
		"sessions",
		"signup", "Ada", "Lovelace", "ada@example.com", "secret1",
		"add", "Calculus", "Math", "2030-01-02", "10:30", "90", "chapter 3",
		"sessions upcoming calc",
		"quiz 2", "1", "1",
		"scores",
		"exit",
	)
	a.Run(ctx)

	assert.Contains(t, replOut.String(), "Please log in first")
	assert.Contains(t, out.String(), "Welcome, Ada!")
	assert.Contains(t, out.String(), "Calculus")
	assert.Contains(t, out.String(), "You scored")

	sessions := svc.Store.ListSessions(ctx)
	require.Len(t, sessions, 1)
	assert.Equal(t, "2030-01-02T10:30", sessions[0].Date)
	assert.Equal(t, 90, sessions[0].Duration)
	assert.Equal(t, "chapter 3", sessions[0].Notes)

	scores := svc.Store.ListScores(ctx)
	require.Len(t, scores, 1)
	assert.Equal(t, 2, scores[0].Total)
	assert.Equal(t, "", scores[0].Category)
}

func TestLogin(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	signup(t, svc)

	a, _ := newTestApp(t, svc)
	require.NoError(t, a.Logout(ctx, nil))
	assert.False(t, a.isLoggedIn(ctx))

	a, _ = newTestApp(t, svc, "wrong-pass")
	assert.ErrorIs(t, a.Login(ctx, []string{"ada@example.com"}), accounts.ErrWrongPassword)

	a, out := newTestApp(t, svc, "ADA@example.com", "secret1")
	require.NoError(t, a.Login(ctx, nil))
	assert.True(t, a.isLoggedIn(ctx))
	assert.Contains(t, out.String(), "Welcome back, Ada!")
	assert.Equal(t, "(ada@example.com)", a.getStatus(ctx))
}

func TestEditAndDelete(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	s, ok := svc.Store.AddSession(ctx, models.Session{
		Title: "Physics", Subject: "Science", Date: "2030-03-04T09:00", Time: "09:00", Duration: 45,
	})
	require.True(t, ok)

	a, _ := newTestApp(t, svc, "", "", "", "14:15", "", "")
	require.NoError(t, a.Edit(ctx, []string{s.ID}))

	got, ok := svc.Store.GetSession(ctx, s.ID)
	require.True(t, ok)
	assert.Equal(t, "Physics", got.Title)
	assert.Equal(t, "2030-03-04T14:15", got.Date)
	assert.Equal(t, "14:15", got.Time)
	assert.Equal(t, 45, got.Duration)

	assert.ErrorIs(t, a.Edit(ctx, nil), errUsageID)
	assert.ErrorIs(t, a.Edit(ctx, []string{"missing"}), errSessionNotFound)

	require.NoError(t, a.Delete(ctx, []string{s.ID}))
	assert.Empty(t, svc.Store.ListSessions(ctx))
	assert.ErrorIs(t, a.Delete(ctx, []string{s.ID}), errSessionNotFound)
}

func TestAdd_ValidationError(t *testing.T) {
	svc := newTestServices(t)
	a, _ := newTestApp(t, svc, "", "Math", "2030-01-02", "", "30", "")

	assert.Error(t, a.Add(context.Background(), nil))
	assert.Empty(t, svc.Store.ListSessions(context.Background()))
}

func TestStatsAndCategories(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	_, ok := svc.Store.AddSession(ctx, models.Session{Title: "Old", Date: "2001-01-01T09:00", Duration: 30})
	require.True(t, ok)

	a, out := newTestApp(t, svc)
	require.NoError(t, a.Stats(ctx, nil))
	assert.Contains(t, out.String(), "Total sessions: 1")
	assert.Contains(t, out.String(), "Completed: 1")
	assert.Contains(t, out.String(), "Nothing scheduled for today")

	out.Reset()
	require.NoError(t, a.Categories(ctx, nil))
	assert.Contains(t, out.String(), "Science & Nature")
	assert.NotContains(t, out.String(), "offline")
}

func TestQuotesFallBackWhenProviderDown(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	a, out := newTestApp(t, svc)

	require.NoError(t, a.Quote(ctx, nil))
	require.NoError(t, a.Quotes(ctx, []string{"3"}))
	assert.Equal(t, 4, countLines(out.String()))
}

func countLines(s string) int {
	n := 0
	for _, r := range s {
		if r == '\n' {
			n++
		}
	}
	return n
}

func TestSetPref(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	a, out := newTestApp(t, svc)

	require.NoError(t, a.SetPref(ctx, []string{"theme", "dark"}))
	require.NoError(t, a.SetPref(ctx, []string{"notifications", "off"}))
	require.NoError(t, a.SetPref(ctx, []string{"goal", "90"}))
	assert.Equal(t, models.Preferences{Theme: "dark", Notifications: false, DailyGoal: 90}, svc.Store.Preferences(ctx))

	assert.ErrorIs(t, a.SetPref(ctx, []string{"theme", "purple"}), errUsageSetPref)
	assert.ErrorIs(t, a.SetPref(ctx, []string{"goal", "-5"}), errUsageSetPref)
	assert.ErrorIs(t, a.SetPref(ctx, []string{"volume"}), errUsageSetPref)

	out.Reset()
	require.NoError(t, a.Prefs(ctx, nil))
	assert.Contains(t, out.String(), "theme: dark")
	assert.Contains(t, out.String(), "notifications: off")
}

func TestExportImportAndClear(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	signup(t, svc)
	_, ok := svc.Store.AddSession(ctx, models.Session{Title: "Chemistry", Date: "2030-01-01T09:00", Duration: 30})
	require.True(t, ok)

	path := filepath.Join(t.TempDir(), "nested", "studify.json")
	a, _ := newTestApp(t, svc, "y")
	require.NoError(t, a.Export(ctx, []string{path}))
	_, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, a.Clear(ctx, nil))
	assert.Empty(t, svc.Store.ListSessions(ctx))
	assert.False(t, a.isLoggedIn(ctx))
	assert.Len(t, svc.Store.ListUsers(ctx), 1)

	require.NoError(t, a.Import(ctx, []string{path}))
	require.Len(t, svc.Store.ListSessions(ctx), 1)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1,2]`), 0o600))
	assert.ErrorIs(t, a.Import(ctx, []string{bad}), backup.ErrImportRejected)
}

func TestBackupNotConfigured(t *testing.T) {
	svc := newTestServices(t)
	a, _ := newTestApp(t, svc)

	assert.ErrorIs(t, a.Backup(context.Background(), nil), backup.ErrNotConfigured)
	assert.ErrorIs(t, a.Restore(context.Background(), nil), backup.ErrNotConfigured)
}

func TestQuiz_QuitAbandonsRun(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	a, out := newTestApp(t, svc, "9", "q")

	require.NoError(t, a.Quiz(ctx, []string{"2", "17", "easy"}))
	assert.Contains(t, out.String(), "Please enter a number between 1 and")
	assert.Contains(t, out.String(), "Quiz abandoned")
	assert.Empty(t, svc.Store.ListScores(ctx))
}

func TestQuiz_InvalidSettings(t *testing.T) {
	svc := newTestServices(t)
	a, _ := newTestApp(t, svc)

	assert.Error(t, a.Quiz(context.Background(), []string{"0"}))
	assert.Error(t, a.Quiz(context.Background(), []string{"5", "x"}))
	assert.Error(t, a.Quiz(context.Background(), []string{"5", "9", "impossible"}))
}
