//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// UserProfileSnapshot is a read-only view of a user's profile used as
// scoring input. The engine never mutates it.
type UserProfileSnapshot struct {
	UserID          string          `json:"user_id"`
	University      UniversityInfo  `json:"university"`
	InterestDomains []string        `json:"interest_domains"`
	TechStack       []TechSkill     `json:"tech_stack"`
	Awards          []Award         `json:"awards"`
	Certifications  []Certification `json:"certifications"`
	Experiences     []Experience    `json:"experiences"`
}

// UniversityInfo holds a user's university enrollment details.
type UniversityInfo struct {
	Name  string `json:"name,omitempty"`
	Grade int    `json:"grade,omitempty"`
	Major string `json:"major,omitempty"`
}

// TechSkill is a single technology with a self-reported proficiency level.
type TechSkill struct {
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// Award is a competition or scholarship award entry.
type Award struct {
	Title     string     `json:"title"`
	Issuer    string     `json:"issuer,omitempty"`
	AwardedAt *time.Time `json:"awarded_at,omitempty"`
}

// Certification is an acquired certification entry.
type Certification struct {
	Name     string     `json:"name"`
	IssuedAt *time.Time `json:"issued_at,omitempty"`
}

// Experience is a single experience entry (internship, project, club, ...).
type Experience struct {
	Type      string     `json:"type"`
	Title     string     `json:"title"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Current   bool       `json:"current"`
	TechTags  []string   `json:"tech_tags,omitempty"`
}
