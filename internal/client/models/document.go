package models

// DocumentType classifies an uploaded document.
type DocumentType string

const (
	DocumentResume      DocumentType = "resume"
	DocumentCoverLetter DocumentType = "cover_letter"
	DocumentOther       DocumentType = "other"
)

// Valid reports whether d is a known document type.
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentResume, DocumentCoverLetter, DocumentOther:
		return true
	}
	return false
}

// Document is a stored resume/cover-letter file record.
type Document struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id"`
	Application  *int64       `json:"application,omitempty"`
	DocumentType DocumentType `json:"document_type"`
	FileName     string       `json:"file_name"`
	IsMaster     bool         `json:"is_master"`
	FileURL      string       `json:"file_url"`
	CreatedAt    string       `json:"created_at"`
}

// Company is a tracked employer record.
type Company struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Website   string `json:"website,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CompanyForm is the create/update payload for companies.
type CompanyForm struct {
	Name     string `json:"name"`
	Website  string `json:"website,omitempty"`
	Industry string `json:"industry,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
