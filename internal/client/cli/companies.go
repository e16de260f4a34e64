package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// Companies lists the saved company notes.
func (a *App) Companies(ctx context.Context) error {
	companies, err := a.companies.List(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if len(companies) == 0 {
		printlnFn("No companies yet. Use 'addcompany' to add one.")
		return nil
	}
	for _, c := range companies {
		printlnFn(fmt.Sprintf("%4d  %-25s %s", c.ID, c.Name, c.Industry))
	}
	return nil
}

// AddCompany creates a new company record.
func (a *App) AddCompany(ctx context.Context) error {
	form, err := a.promptCompanyForm(models.CompanyForm{})
	if err != nil {
		return err
	}
	c, err := a.companies.Create(ctx, form)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn(fmt.Sprintf("Created company %d (%s)", c.ID, c.Name))
	return nil
}

// EditCompany updates an existing company. Empty answers keep current values.
func (a *App) EditCompany(ctx context.Context) error {
	id, err := a.promptID("Enter company id")
	if err != nil {
		return err
	}
	current, err := a.companies.Get(ctx, id)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	form, err := a.promptCompanyForm(models.CompanyForm{
		Name:     current.Name,
		Website:  current.Website,
		Industry: current.Industry,
		Notes:    current.Notes,
	})
	if err != nil {
		return err
	}

	if _, err := a.companies.Update(ctx, id, form); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Updated")
	return nil
}

// DeleteCompany removes a company record by id.
func (a *App) DeleteCompany(ctx context.Context) error {
	id, err := a.promptID("Enter company id to delete")
	if err != nil {
		return err
	}
	if err := a.companies.Delete(ctx, id); err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	printlnFn("Deleted")
	return nil
}

func (a *App) promptCompanyForm(base models.CompanyForm) (models.CompanyForm, error) {
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
	if base.Name, err = ask("Enter company name", base.Name); err != nil {
		return base, err
	}
	if base.Website, err = ask("Enter website (optional)", base.Website); err != nil {
		return base, err
	}
	if base.Industry, err = ask("Enter industry (optional)", base.Industry); err != nil {
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
