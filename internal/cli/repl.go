package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a recording stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool

	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error

	Sessions(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error

	Categories(ctx context.Context, args []string) error
	Quiz(ctx context.Context, args []string) error
	Scores(ctx context.Context, args []string) error

	Quote(ctx context.Context, args []string) error
	Quotes(ctx context.Context, args []string) error

	Prefs(ctx context.Context, args []string) error
	SetPref(ctx context.Context, args []string) error

	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Backup(ctx context.Context, args []string) error
	Restore(ctx context.Context, args []string) error
	Clear(ctx context.Context, args []string) error
}

type command struct {
	run       func(execIface, context.Context, []string) error
	protected bool
}

var commands = map[string]command{
	"signup": {run: execIface.Signup},
	"login":  {run: execIface.Login},
	"logout": {run: execIface.Logout, protected: true},

	"sessions": {run: execIface.Sessions, protected: true},
	"ls":       {run: execIface.Sessions, protected: true},
	"add":      {run: execIface.Add, protected: true},
	"edit":     {run: execIface.Edit, protected: true},
	"delete":   {run: execIface.Delete, protected: true},
	"rm":       {run: execIface.Delete, protected: true},
	"stats":    {run: execIface.Stats, protected: true},

	"categories": {run: execIface.Categories, protected: true},
	"quiz":       {run: execIface.Quiz, protected: true},
	"scores":     {run: execIface.Scores, protected: true},

	"quote":  {run: execIface.Quote},
	"quotes": {run: execIface.Quotes},

	"prefs":   {run: execIface.Prefs, protected: true},
	"setpref": {run: execIface.SetPref, protected: true},

	"export":  {run: execIface.Export, protected: true},
	"import":  {run: execIface.Import, protected: true},
	"backup":  {run: execIface.Backup, protected: true},
	"restore": {run: execIface.Restore, protected: true},
	"clear":   {run: execIface.Clear, protected: true},
}

const (
	guestHelp = "Available commands: signup, login, quote, quotes, exit"
	userHelp  = "Available commands: sessions [all|upcoming|today|past] [search], add, edit <id>, delete <id>, stats, " +
		"categories, quiz [amount] [category] [difficulty], scores, quote, quotes [n], prefs, setpref <key> <value>, " +
		"export [file], import [file], backup, restore [key], clear, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
//
// The first token is the command and the rest are its arguments. Commands
// marked protected are refused until a user is signed in. Handler errors
// are printed and the loop continues; it ends on EOF, "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("studify %s> ", statusFn(ctx)))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(userHelp)
			} else {
				printlnFn(guestHelp)
			}
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if c.protected && !a.isLoggedIn(ctx) {
			printlnFn("Please log in first")
			continue
		}
		if err := c.run(a, ctx, args); err != nil {
			printlnFn("Error:", err)
		}
	}
}
