package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Logout(ctx context.Context) error
	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	EditTask(ctx context.Context, id string) error
	CompleteTask(ctx context.Context, id string) error
	RemoveTask(ctx context.Context, id string) error
	Dashboard(ctx context.Context) error
	EditProfile(ctx context.Context) error
	EditSettings(ctx context.Context) error
	ToggleSidebar(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the task tracker CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Signed-out sessions only get account commands; signed-in sessions only
// get task and profile commands. Crossing the line prints a hint instead
// of calling the handler.
//
//	Signed out:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - forgot         — send a password reset email
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - dashboard      — overview of profile, tasks and preferences
//	  - (l)ist | tasks — list tasks
//	  - add            — add a task
//	  - edit <id>      — edit a task's title and description
//	  - done <id>      — mark a task completed
//	  - delete <id>    — delete a task
//	  - profile        — update profile fields
//	  - settings       — update preferences
//	  - sidebar        — toggle the sidebar
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers
// surface their own errors. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tt> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, (l)ist, add, edit <id>, done <id>, delete <id>, profile, settings, sidebar, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, exit")
			}

		case "register":
			if a.isLoggedIn() {
				printlnFn("Already signed in; logout first")
				continue
			}
			_ = a.Register(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already signed in; logout first")
				continue
			}
			_ = a.Login(ctx)

		case "forgot":
			if a.isLoggedIn() {
				printlnFn("Already signed in; logout first")
				continue
			}
			_ = a.ForgotPassword(ctx)

		case "dashboard":
			if !requireLogin(a) {
				continue
			}
			_ = a.Dashboard(ctx)

		case "l", "list", "tasks":
			if !requireLogin(a) {
				continue
			}
			_ = a.ListTasks(ctx)

		case "add":
			if !requireLogin(a) {
				continue
			}
			_ = a.AddTask(ctx)

		case "edit":
			if !requireLogin(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			_ = a.EditTask(ctx, args[0])

		case "done":
			if !requireLogin(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.CompleteTask(ctx, args[0])

		case "delete":
			if !requireLogin(a) {
				continue
			}
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.RemoveTask(ctx, args[0])

		case "profile":
			if !requireLogin(a) {
				continue
			}
			_ = a.EditProfile(ctx)

		case "settings":
			if !requireLogin(a) {
				continue
			}
			_ = a.EditSettings(ctx)

		case "sidebar":
			if !requireLogin(a) {
				continue
			}
			_ = a.ToggleSidebar(ctx)

		case "logout":
			if !requireLogin(a) {
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func requireLogin(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Sign in first (register or login)")
		return false
	}
	return true
}
