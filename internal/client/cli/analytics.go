package cli

import (
	"context"
	"fmt"
)

// Analytics prints the aggregate pipeline counters.
func (a *App) Analytics(ctx context.Context) error {
	o, err := a.analytics.Overview(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Total applications:  %d", o.TotalApplications))
	printlnFn(fmt.Sprintf("Applied:             %d", o.Applied))
	printlnFn(fmt.Sprintf("Saved:               %d", o.Saved))
	printlnFn(fmt.Sprintf("Interviews:          %d", o.Interviews))
	printlnFn(fmt.Sprintf("Offers:              %d", o.Offers))
	printlnFn(fmt.Sprintf("Rejected:            %d", o.Rejected))
	printlnFn(fmt.Sprintf("Response rate:       %.1f%%", o.ResponseRate))
	printlnFn(fmt.Sprintf("Avg days to answer:  %.1f", o.AvgDaysToResponse))
	return nil
}

// Charts prints the time-series and ranking data as plain tables.
func (a *App) Charts(ctx context.Context) error {
	c, err := a.analytics.Charts(ctx)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	if len(c.ApplicationsByDate) > 0 {
		printlnFn("Applications by date:")
		for _, p := range c.ApplicationsByDate {
			printlnFn(fmt.Sprintf("  %s  %d", p.Date, p.Count))
		}
	}
	if len(c.TopCompanies) > 0 {
		printlnFn("Top companies:")
		for _, p := range c.TopCompanies {
			printlnFn(fmt.Sprintf("  %-25s %d", p.CompanyName, p.Count))
		}
	}
	if len(c.ResponseTrends) > 0 {
		printlnFn("Response trend:")
		for _, p := range c.ResponseTrends {
			printlnFn(fmt.Sprintf("  %s  %.1f%%", p.Month, p.Rate))
		}
	}
	if len(c.ApplicationsByDate) == 0 && len(c.TopCompanies) == 0 && len(c.ResponseTrends) == 0 {
		printlnFn("No data yet")
	}
	return nil
}
