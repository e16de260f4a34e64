package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// promptID asks the user for a numeric record id.
func (a *App) promptID(prompt string) (int64, error) {
	raw, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		printlnFn("Not a valid id:", raw)
		return 0, err
	}
	return id, nil
}

// List prints the tracked applications, optionally filtered by status.
func (a *App) List(ctx context.Context, status string) error {
	apps, err := a.apps.List(ctx, models.ApplicationStatus(status))
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if len(apps) == 0 {
		printlnFn("No applications yet. Use 'add' to track one.")
		return nil
	}
	for _, app := range apps {
		printlnFn(fmt.Sprintf("%4d  %-12s %-25s %s", app.ID, app.Status, app.CompanyName, app.Position))
	}
	return nil
}

// Show displays one application in full.
func (a *App) Show(ctx context.Context) error {
	id, err := a.promptID("Enter application id")
	if err != nil {
		return err
	}

	app, err := a.apps.Get(ctx, id)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Company:   %s", app.CompanyName))
	printlnFn(fmt.Sprintf("Position:  %s", app.Position))
	printlnFn(fmt.Sprintf("Status:    %s", app.Status))
	if app.Location != "" {
		printlnFn(fmt.Sprintf("Location:  %s", app.Location))
	}
	if app.SalaryRange != "" {
		printlnFn(fmt.Sprintf("Salary:    %s", app.SalaryRange))
	}
	if app.ApplicationURL != "" {
		printlnFn(fmt.Sprintf("URL:       %s", app.ApplicationURL))
	}
	printDate := func(label string, d *string) {
		if d != nil && *d != "" {
			printlnFn(fmt.Sprintf("%s %s", label, *d))
		}
	}
	printDate("Saved:    ", app.DateSaved)
	printDate("Applied:  ", app.DateApplied)
	printDate("Interview:", app.DateInterview)
	printDate("Offer:    ", app.DateOffer)
	printDate("Rejected: ", app.DateRejected)
	if app.Notes != "" {
		printlnFn("Notes:")
		printlnFn(app.Notes)
	}
	return nil
}

// Add walks the user through creating a new application.
func (a *App) Add(ctx context.Context) error {
	form, err := a.promptApplicationForm(ctx, models.ApplicationForm{Status: models.StatusSaved})
	if err != nil {
		return err
	}

	app, err := a.apps.Create(ctx, form)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Created application %d (%s at %s)", app.ID, app.Position, app.CompanyName))
	return nil
}

// Edit updates an existing application. Empty answers keep the current value.
func (a *App) Edit(ctx context.Context) error {
	id, err := a.promptID("Enter application id")
	if err != nil {
		return err
	}

	current, err := a.apps.Get(ctx, id)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	form, err := a.promptApplicationForm(ctx, models.ApplicationForm{
		CompanyName:    current.CompanyName,
		Position:       current.Position,
		Status:         current.Status,
		ApplicationURL: current.ApplicationURL,
		Location:       current.Location,
		SalaryRange:    current.SalaryRange,
		DateSaved:      current.DateSaved,
		DateApplied:    current.DateApplied,
		DateInterview:  current.DateInterview,
		DateOffer:      current.DateOffer,
		DateRejected:   current.DateRejected,
		Notes:          current.Notes,
	})
	if err != nil {
		return err
	}

	if _, err := a.apps.Update(ctx, id, form); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Updated")
	return nil
}

// Delete removes an application after prompting for its id.
func (a *App) Delete(ctx context.Context) error {
	id, err := a.promptID("Enter application id to delete")
	if err != nil {
		return err
	}
	if err := a.apps.Delete(ctx, id); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Deleted")
	return nil
}

// promptApplicationForm collects the form fields. Empty input keeps the
// value passed in 'base', so the same flow serves both add and edit.
func (a *App) promptApplicationForm(ctx context.Context, base models.ApplicationForm) (models.ApplicationForm, error) {
	ask := func(prompt, current string) (string, error) {
		p := prompt
		if current != "" {
			p = fmt.Sprintf("%s [%s]", prompt, current)
		}
		v, err := getSimpleText(a.reader, p, os.Stdout)
		if err != nil {
			return "", err
		}
		if v == "" {
			return current, nil
		}
		return v, nil
	}

	var err error
	if base.CompanyName, err = ask("Enter company name", base.CompanyName); err != nil {
		return base, err
	}
	if base.Position, err = ask("Enter position", base.Position); err != nil {
		return base, err
	}

	status, err := ask(fmt.Sprintf("Enter status %v", models.KnownStatuses), string(base.Status))
	if err != nil {
		return base, err
	}
	base.Status = models.ApplicationStatus(status)

	if base.ApplicationURL, err = ask("Enter application URL (optional)", base.ApplicationURL); err != nil {
		return base, err
	}
	if base.Location, err = ask("Enter location (optional)", base.Location); err != nil {
		return base, err
	}
	if base.SalaryRange, err = ask("Enter salary range (optional)", base.SalaryRange); err != nil {
		return base, err
	}

	notes, err := getMultiline(a.reader, "Enter notes (double Enter to finish):", os.Stdout)
	if err != nil {
		return base, err
	}
	if notes != "" {
		base.Notes = notes
	}

	return base, nil
}
