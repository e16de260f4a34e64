package models

// ApplicationStatus is the lifecycle stage of a tracked application.
type ApplicationStatus string

const (
	StatusSaved     ApplicationStatus = "saved"
	StatusApplied   ApplicationStatus = "applied"
	StatusInterview ApplicationStatus = "interview"
	StatusOffer     ApplicationStatus = "offer"
	StatusRejected  ApplicationStatus = "rejected"
)

// KnownStatuses lists every valid status in display order.
var KnownStatuses = []ApplicationStatus{
	StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected,
}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusSaved, StatusApplied, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

// Application is a tracked job application as returned by the server.
// Date fields are YYYY-MM-DD strings; pointers distinguish absent from empty.
type Application struct {
	ID             int64             `json:"id"`
	CompanyName    string            `json:"company_name"`
	Position       string            `json:"position"`
	Status         ApplicationStatus `json:"status"`
	ApplicationURL string            `json:"application_url,omitempty"`
	Location       string            `json:"location,omitempty"`
	SalaryRange    string            `json:"salary_range,omitempty"`
	DateSaved      *string           `json:"date_saved,omitempty"`
	DateApplied    *string           `json:"date_applied,omitempty"`
	DateInterview  *string           `json:"date_interview,omitempty"`
	DateOffer      *string           `json:"date_offer,omitempty"`
	DateRejected   *string           `json:"date_rejected,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	CreatedAt      string            `json:"created_at,omitempty"`
	UpdatedAt      string            `json:"updated_at,omitempty"`
}

// ApplicationForm is the payload sent on create/update. Date fields are
// normalized client-side before dispatch; nil means "not set".
type ApplicationForm struct {
	CompanyName    string            `json:"company_name"`
	Position       string            `json:"position"`
	Status         ApplicationStatus `json:"status"`
	ApplicationURL string            `json:"application_url"`
	Location       string            `json:"location"`
	SalaryRange    string            `json:"salary_range"`
	DateSaved      *string           `json:"date_saved"`
	DateApplied    *string           `json:"date_applied"`
	DateInterview  *string           `json:"date_interview"`
	DateOffer      *string           `json:"date_offer"`
	DateRejected   *string           `json:"date_rejected"`
	Notes          string            `json:"notes"`
}
