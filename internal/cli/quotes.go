package cli

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/studify/internal/quotes"
)

func (a *App) Quote(ctx context.Context, _ []string) error {
	q := a.svc.Quotes.Daily(ctx)
	a.printf("%q - %s\n", q.Text, q.Author)
	return nil
}

// Quotes prints n random quotes, quotes.DefaultRandomCount by default.
func (a *App) Quotes(ctx context.Context, args []string) error {
	n := quotes.DefaultRandomCount
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v <= 0 {
			a.println("Usage: quotes [n]")
			return nil
		}
		n = v
	}
	for _, q := range a.svc.Quotes.Random(ctx, n) {
		a.printf("%q - %s\n", q.Text, q.Author)
	}
	return nil
}
