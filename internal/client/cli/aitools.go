package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/jobtrackr/internal/client/models"
)

// runTool is the shared workflow for the generation commands: prompt for the
// resume path and job description, stream the output to the terminal as it
// arrives, and report where the full text was saved.
func (a *App) runTool(ctx context.Context, tool models.GenerationType) error {
	prompt := "Enter resume file path (.pdf/.docx/.txt)"
	if tool == models.GenerationMatchScore {
		prompt += " (optional, Enter to skip)"
	}
	resumePath, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}

	jobDescription, err := getMultiline(a.reader, "Paste the job description (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	outPath, err := a.ai.Generate(ctx, tool, resumePath, jobDescription, func(chunk string) {
		fmt.Print(chunk)
	})
	fmt.Println()
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn("Saved to:", outPath)
	return nil
}

// TailorResume rewrites the resume for a specific posting.
func (a *App) TailorResume(ctx context.Context) error {
	return a.runTool(ctx, models.GenerationTailoredResume)
}

// CoverLetter drafts a cover letter for a posting.
func (a *App) CoverLetter(ctx context.Context) error {
	return a.runTool(ctx, models.GenerationCoverLetter)
}

// InterviewPrep produces likely interview questions and talking points.
func (a *App) InterviewPrep(ctx context.Context) error {
	return a.runTool(ctx, models.GenerationInterviewPrep)
}

// MatchScore rates how well the resume fits the posting.
func (a *App) MatchScore(ctx context.Context) error {
	return a.runTool(ctx, models.GenerationMatchScore)
}

// Scrape extracts the title, company, and description from a job posting URL.
func (a *App) Scrape(ctx context.Context) error {
	jobURL, err := getSimpleText(a.reader, "Enter job posting URL", os.Stdout)
	if err != nil {
		return err
	}

	job, err := a.ai.ScrapeJob(ctx, jobURL)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Title:   %s", job.Title))
	printlnFn(fmt.Sprintf("Company: %s", job.Company))
	printlnFn("Description:")
	printlnFn(job.Description)
	return nil
}

// History lists past AI tool runs. The user may narrow by tool type.
func (a *App) History(ctx context.Context) error {
	raw, err := getSimpleText(a.reader, "Filter by tool (tailored_resume/cover_letter/interview_prep/match_score, Enter for all)", os.Stdout)
	if err != nil {
		return err
	}

	filter := models.GenerationFilter{}
	if raw != "" {
		t := models.GenerationType(raw)
		if !t.Valid() {
			printlnFn("Unknown tool:", raw)
			return fmt.Errorf("unknown tool %q", raw)
		}
		filter.Type = t
	}

	items, err := a.ai.ListGenerations(ctx, filter)
	if err != nil {
		printlnFn("error:", err.Error())
		return err
	}
	if len(items) == 0 {
		printlnFn("No generations yet")
		return nil
	}
	for _, g := range items {
		printlnFn(fmt.Sprintf("%4d  %-16s %s", g.ID, g.GenerationType.DisplayName(), g.CreatedAt))
	}
	return nil
}
