// Package cli provides the interactive Studify command-line client.
//
// It runs a read-eval-print loop over the services assembled by package
// services: account signup and login, the study session planner, trivia
// quizzes, quotes, preferences, and snapshot export, import and backup.
//
// Planner, quiz and data commands require a signed-in user; help lists
// what is available in the current state.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends.
package cli
