// Package document renders persisted aggregates into normalized text
// documents, the unit fed to the embedding service.
package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// Per-field character budgets bounding downstream embedding cost.
const (
	maxDescriptionLen     = 700
	maxRequirementsLen    = 900
	maxBenefitsLen        = 500
	maxActivityContentLen = 600
)

// FromRole renders a target profile. An empty result means the role carries
// too little data to embed; callers must skip embedding in that case.
func FromRole(role *types.TargetProfile) string {
	if role == nil {
		return ""
	}
	var b builder
	b.text(role.Name)
	b.labeled("Seniority", role.ExpectedSeniority)
	b.text(truncate(role.Description, maxDescriptionLen))
	b.weighted("Required skills", role.RequiredSkills)
	b.weighted("Bonus skills", role.BonusSkills)
	b.weighted("Majors", role.MajorMapping)
	b.list("Certifications", role.RecommendedCertifications)
	return b.String()
}

// FromJobPosting renders a job posting aggregate.
func FromJobPosting(job *types.JobPosting) string {
	if job == nil {
		return ""
	}
	var b builder
	b.text(job.Title)
	b.labeled("Company", job.CompanyName)
	b.labeled("Career level", job.CareerLevel)
	b.labeled("Education", job.EducationLevel)
	b.text(truncate(job.Description, maxDescriptionLen))
	b.text(truncate(job.Requirements, maxRequirementsLen))
	b.text(truncate(job.Benefits, maxBenefitsLen))
	return b.String()
}

// FromActivity renders an activity aggregate.
func FromActivity(a *types.Activity) string {
	if a == nil {
		return ""
	}
	var b builder
	b.text(a.Title)
	b.labeled("Organizer", a.Organizer)
	b.labeled("Category", a.Category)
	b.text(truncate(a.Content, maxActivityContentLen))
	b.list("Tags", a.Tags)
	return b.String()
}

// FromUserProfile renders a user profile snapshot.
func FromUserProfile(p *types.UserProfileSnapshot) string {
	if p == nil {
		return ""
	}
	var b builder
	b.labeled("University", p.University.Name)
	b.labeled("Major", p.University.Major)
	if p.University.Grade > 0 {
		b.labeled("Grade", strconv.Itoa(p.University.Grade))
	}
	b.list("Interests", p.InterestDomains)

	skills := make([]string, 0, len(p.TechStack))
	for _, s := range p.TechStack {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		if s.Level != "" {
			skills = append(skills, fmt.Sprintf("%s (%s)", s.Name, s.Level))
		} else {
			skills = append(skills, s.Name)
		}
	}
	b.list("Tech stack", skills)

	certs := make([]string, 0, len(p.Certifications))
	for _, c := range p.Certifications {
		certs = append(certs, c.Name)
	}
	b.list("Certifications", certs)

	awards := make([]string, 0, len(p.Awards))
	for _, a := range p.Awards {
		awards = append(awards, a.Title)
	}
	b.list("Awards", awards)

	exps := make([]string, 0, len(p.Experiences))
	for _, e := range p.Experiences {
		exps = append(exps, e.Title)
	}
	b.list("Experiences", exps)
	return b.String()
}

// builder accumulates period-terminated fields, skipping blanks silently.
type builder struct {
	sb strings.Builder
}

func (b *builder) text(v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	b.sb.WriteString(v)
	b.sb.WriteString(". ")
}

func (b *builder) labeled(label, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		return
	}
	b.text(fmt.Sprintf("%s: %s", label, v))
}

func (b *builder) list(label string, items []string) {
	kept := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it != "" {
			kept = append(kept, it)
		}
	}
	if len(kept) == 0 {
		return
	}
	b.text(fmt.Sprintf("%s: %s", label, strings.Join(kept, ", ")))
}

func (b *builder) weighted(label string, entries []types.WeightedEntry) {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", name, formatWeight(e.Weight)))
	}
	if len(parts) == 0 {
		return
	}
	b.text(fmt.Sprintf("%s: %s", label, strings.Join(parts, ", ")))
}

func (b *builder) String() string {
	return strings.TrimSpace(b.sb.String())
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'g', -1, 64)
}

// truncate bounds s to max runes, keeping multi-byte text intact.
func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
