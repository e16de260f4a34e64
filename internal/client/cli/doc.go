// Package cli provides the interactive job tracker command-line client.
//
// It wires configuration, local storage, the REST API client, and an
// interactive REPL. On startup the persisted session is restored, so a user
// who logged in previously lands straight in the authenticated prompt.
//
// Key features:
//   - Register / Login / Logout with a persisted session
//   - Track applications: list, show, add, edit, delete (with offline listing)
//   - Analytics: aggregate counters and chart data
//   - AI tools: tailored resume, cover letter, interview prep, match score,
//     job scraping, and generation history
//   - Documents and company notes
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and the guard helpers for details.
package cli
