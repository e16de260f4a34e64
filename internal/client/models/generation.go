package models

// GenerationType identifies which AI tool produced a generation.
type GenerationType string

const (
	GenerationTailoredResume GenerationType = "tailored_resume"
	GenerationCoverLetter    GenerationType = "cover_letter"
	GenerationInterviewPrep  GenerationType = "interview_prep"
	GenerationMatchScore     GenerationType = "match_score"
)

// DisplayName returns the human-readable tool name used in history listings.
func (g GenerationType) DisplayName() string {
	switch g {
	case GenerationTailoredResume:
		return "Tailored Resume"
	case GenerationCoverLetter:
		return "Cover Letter"
	case GenerationInterviewPrep:
		return "Interview Prep"
	case GenerationMatchScore:
		return "Match Score"
	default:
		return string(g)
	}
}

// Valid reports whether g names a known AI tool.
func (g GenerationType) Valid() bool {
	switch g {
	case GenerationTailoredResume, GenerationCoverLetter, GenerationInterviewPrep, GenerationMatchScore:
		return true
	}
	return false
}

// AIGeneration is one saved AI tool run from the server-side history.
type AIGeneration struct {
	ID                    int64          `json:"id"`
	UserID                int64          `json:"user_id"`
	Application           *int64         `json:"application,omitempty"`
	GenerationType        GenerationType `json:"generation_type"`
	GenerationTypeDisplay string         `json:"generation_type_display,omitempty"`
	JobDescription        string         `json:"job_description"`
	JobURL                string         `json:"job_url,omitempty"`
	OutputText            string         `json:"output_text"`
	ModelUsed             string         `json:"model_used,omitempty"`
	TokensUsed            int64          `json:"tokens_used,omitempty"`
	CreatedAt             string         `json:"created_at"`
}

// GenerationFilter narrows a history listing. Zero values mean "no filter".
type GenerationFilter struct {
	Type          GenerationType
	ApplicationID int64
}

// ScrapedJob holds the fields extracted from a job posting URL.
type ScrapedJob struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}
