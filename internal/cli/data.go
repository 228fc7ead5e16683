package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/studify/internal/backup"
)

func (a *App) exportPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.svc.Config.ExportPath
}

// Export writes a snapshot to the given file or the configured export path.
func (a *App) Export(ctx context.Context, args []string) error {
	path := a.exportPath(args)
	if err := backup.ExportFile(ctx, a.svc.Store, path); err != nil {
		return err
	}
	a.printf("Exported to %s\n", path)
	return nil
}

// Import replaces the keys present in the snapshot file.
func (a *App) Import(ctx context.Context, args []string) error {
	path := a.exportPath(args)
	if err := backup.ImportFile(ctx, a.svc.Store, path); err != nil {
		return err
	}
	a.printf("Imported %s\n", path)
	return nil
}

func (a *App) Backup(ctx context.Context, _ []string) error {
	key, err := a.svc.Backup.Backup(ctx)
	if err != nil {
		return err
	}
	a.printf("Backed up to %s\n", key)
	return nil
}

// Restore loads the backup named by the argument, or the newest one.
func (a *App) Restore(ctx context.Context, args []string) error {
	var key string
	if len(args) > 0 {
		key = args[0]
	}
	restored, err := a.svc.Backup.Restore(ctx, key)
	if err != nil {
		return err
	}
	a.printf("Restored %s\n", restored)
	return nil
}

var errClearFailed = errors.New("could not clear all data")

// Clear wipes planner data after confirmation. Registered accounts are kept
// but the current user is signed out.
func (a *App) Clear(ctx context.Context, _ []string) error {
	ok, err := Confirm(a.reader, "Delete all sessions, scores and preferences?", a.out)
	if err != nil || !ok {
		return err
	}
	if !a.svc.Store.ClearAll(ctx) {
		return errClearFailed
	}
	a.println("All data cleared, please log in again")
	return nil
}
