//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// JobPosting is a persisted job posting aggregate. Free-text fields
// (Description, Requirements, Benefits) feed the document builder and the
// heuristic requirement fallback.
type JobPosting struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	CompanyName    string    `json:"company_name"`
	URL            string    `json:"url,omitempty"`
	Description    string    `json:"description,omitempty"`
	Requirements   string    `json:"requirements,omitempty"`
	Benefits       string    `json:"benefits,omitempty"`
	EducationLevel string    `json:"education_level,omitempty"`
	CareerLevel    string    `json:"career_level,omitempty"`
	PostedAt       time.Time `json:"posted_at,omitempty"`
}

// Activity is a persisted extracurricular activity aggregate
// (contest, bootcamp, club recruitment, ...).
type Activity struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Organizer string     `json:"organizer,omitempty"`
	Category  string     `json:"category,omitempty"`
	Content   string     `json:"content,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	StartAt   *time.Time `json:"start_at,omitempty"`
	EndAt     *time.Time `json:"end_at,omitempty"`
}
