package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errUsageSetPref = errors.New("usage: setpref theme <light|dark> | notifications <on|off> | goal <minutes>")

func (a *App) Prefs(ctx context.Context, _ []string) error {
	p := a.svc.Store.Preferences(ctx)
	notif := "off"
	if p.Notifications {
		notif = "on"
	}
	a.printf("theme: %s\nnotifications: %s\ndaily goal: %d min\n", p.Theme, notif, p.DailyGoal)
	return nil
}

// SetPref changes one preference and saves the whole record.
func (a *App) SetPref(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsageSetPref
	}
	p := a.svc.Store.Preferences(ctx)
	val := strings.ToLower(args[1])

	switch strings.ToLower(args[0]) {
	case "theme":
		if val != "light" && val != "dark" {
			return errUsageSetPref
		}
		p.Theme = val
	case "notifications":
		switch val {
		case "on", "true", "yes":
			p.Notifications = true
		case "off", "false", "no":
			p.Notifications = false
		default:
			return errUsageSetPref
		}
	case "goal", "dailygoal":
		n, err := strconv.Atoi(val)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: goal must be a positive number", errUsageSetPref)
		}
		p.DailyGoal = n
	default:
		return errUsageSetPref
	}

	if !a.svc.Store.SavePreferences(ctx, p) {
		return errStoreWrite
	}
	a.println("Preferences saved")
	return nil
}
