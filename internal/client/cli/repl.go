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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error

	List(ctx context.Context, status string) error
	Show(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error

	Analytics(ctx context.Context) error
	Charts(ctx context.Context) error

	TailorResume(ctx context.Context) error
	CoverLetter(ctx context.Context) error
	InterviewPrep(ctx context.Context) error
	MatchScore(ctx context.Context) error
	Scrape(ctx context.Context) error
	History(ctx context.Context) error

	Documents(ctx context.Context) error
	Upload(ctx context.Context) error
	DeleteDocument(ctx context.Context) error

	Companies(ctx context.Context) error
	AddCompany(ctx context.Context) error
	EditCompany(ctx context.Context) error
	DeleteCompany(ctx context.Context) error
}

const helpLoggedIn = `Applications: (l)ist [status], show, add, edit, delete
Analytics:    analytics, charts
AI tools:     tailor, cover, prep, score, scrape, history
Documents:    docs, upload, deldoc
Companies:    companies, addcompany, editcompany, delcompany
Account:      profile, editprofile, passwd, logout
Other:        help, exit`

const helpLoggedOut = `Available commands: register, login, exit`

// runREPL starts a simple read–eval–print loop for the job tracker CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Every command is gated through
// the route guard: commands that need a signed-in user bounce to login when
// the session is absent, and login/register are refused while signed in.
// Unknown commands are reported back to the user. The loop exits on scanner
// EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, s sessionState, statusFn func() string, scanner *bufio.Scanner) {
	// protected runs fn only for a signed-in user.
	protected := func(fn func() error) {
		switch guardProtected(s) {
		case guardWait:
			printlnFn("Session restore in progress, try again in a moment")
		case guardToLogin:
			printlnFn("Please login first (type 'login')")
		default:
			_ = fn()
		}
	}
	// publicOnly runs fn only for a signed-out user.
	publicOnly := func(fn func() error) {
		switch guardPublicOnly(s) {
		case guardWait:
			printlnFn("Session restore in progress, try again in a moment")
		case guardToMain:
			printlnFn("Already signed in. Use 'logout' to switch accounts.")
		default:
			_ = fn()
		}
	}

	for {
		printlnFn(fmt.Sprintf("jt> %s > ", statusFn()))
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
			if resolveRoute(s) == RouteAuthenticated {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			publicOnly(func() error { return a.Register(ctx) })

		case "login":
			publicOnly(func() error { return a.Login(ctx) })

		case "logout":
			protected(func() error { return a.Logout(ctx) })

		case "profile":
			protected(func() error { return a.Profile(ctx) })

		case "editprofile":
			protected(func() error { return a.EditProfile(ctx) })

		case "passwd":
			protected(func() error { return a.ChangePassword(ctx) })

		case "l", "list":
			status := ""
			if len(args) > 0 {
				status = args[0]
			}
			protected(func() error { return a.List(ctx, status) })

		case "show":
			protected(func() error { return a.Show(ctx) })

		case "add":
			protected(func() error { return a.Add(ctx) })

		case "edit":
			protected(func() error { return a.Edit(ctx) })

		case "delete":
			protected(func() error { return a.Delete(ctx) })

		case "analytics":
			protected(func() error { return a.Analytics(ctx) })

		case "charts":
			protected(func() error { return a.Charts(ctx) })

		case "tailor":
			protected(func() error { return a.TailorResume(ctx) })

		case "cover":
			protected(func() error { return a.CoverLetter(ctx) })

		case "prep":
			protected(func() error { return a.InterviewPrep(ctx) })

		case "score":
			protected(func() error { return a.MatchScore(ctx) })

		case "scrape":
			protected(func() error { return a.Scrape(ctx) })

		case "history":
			protected(func() error { return a.History(ctx) })

		case "docs":
			protected(func() error { return a.Documents(ctx) })

		case "upload":
			protected(func() error { return a.Upload(ctx) })

		case "deldoc":
			protected(func() error { return a.DeleteDocument(ctx) })

		case "companies":
			protected(func() error { return a.Companies(ctx) })

		case "addcompany":
			protected(func() error { return a.AddCompany(ctx) })

		case "editcompany":
			protected(func() error { return a.EditCompany(ctx) })

		case "delcompany":
			protected(func() error { return a.DeleteCompany(ctx) })

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
