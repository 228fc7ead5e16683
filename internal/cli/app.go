package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/studify/internal/services"
)

type App struct {
	svc    *services.Services
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(svc *services.Services, in io.Reader, out io.Writer) *App {
	return &App{svc: svc, reader: bufio.NewReader(in), out: out}
}

// Run greets the user with the daily quote and serves commands until exit.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Studify (type 'help' for commands)")
	q := a.svc.Quotes.Daily(ctx)
	fmt.Fprintf(a.out, "%q - %s\n", q.Text, q.Author)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.svc.Accounts.Authorized(ctx)
}

func (a *App) getStatus(ctx context.Context) string {
	u, ok := a.svc.Accounts.Current(ctx)
	if !ok || !a.isLoggedIn(ctx) {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Email)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
