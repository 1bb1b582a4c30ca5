package requirements

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/hyeonwoo/careerfit/internal/types"
)

// majorIndicators mark a requirement line as naming an academic major
// rather than a skill or experience. Latin indicators match
// case-insensitively.
var majorIndicators = []string{"학과", "전공", "department of", "major"}

// majorSuffixes are indicator words stripped from the tail of an extracted
// major name ("컴퓨터공학과 전공" keeps only "컴퓨터공학과").
var majorSuffixes = []string{"전공자", "전공", "major", "majors"}

// fallback builds a requirement set from the posting's free-text fields:
// requirement lines become required items, benefit lines preferred items,
// with major-indicating lines routed into the majors lists.
func (r *Resolver) fallback(job *types.JobPosting) *types.JobRequirementSet {
	set := &types.JobRequirementSet{}

	reqSkills, reqMajors := classifyLines(splitItems(job.Requirements))
	set.RequiredSkills = reqSkills
	set.RequiredMajors = reqMajors

	prefSkills, prefMajors := classifyLines(splitItems(job.Benefits))
	set.PreferredSkills = prefSkills
	set.PreferredMajors = prefMajors

	if edu := strings.TrimSpace(job.EducationLevel); edu != "" {
		set.RequiredMajors = append(set.RequiredMajors, edu)
	}
	set.ExpectedSeniority = strings.TrimSpace(job.CareerLevel)

	r.logger.Debug("resolved requirements from free text",
		zap.Int64("job_id", job.ID),
		zap.Int("required_skills", len(set.RequiredSkills)),
		zap.Int("required_majors", len(set.RequiredMajors)))

	return normalizeSet(set)
}

// classifyLines splits extracted lines into skill/experience items and
// major items.
func classifyLines(lines []string) (skills, majors []string) {
	for _, line := range lines {
		if isMajorLine(line) {
			if major := sanitizeMajor(line); major != "" {
				majors = append(majors, major)
			}
			continue
		}
		skills = append(skills, line)
	}
	return skills, majors
}

func isMajorLine(line string) bool {
	lower := strings.ToLower(line)
	for _, indicator := range majorIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// sanitizeMajor strips trailing indicator words and leftover punctuation
// from a major line.
func sanitizeMajor(line string) string {
	line = strings.TrimSpace(line)
	for {
		trimmed := line
		for _, suffix := range majorSuffixes {
			lower := strings.ToLower(trimmed)
			if strings.HasSuffix(lower, suffix) {
				trimmed = strings.TrimSpace(trimmed[:len(trimmed)-len(suffix)])
			}
		}
		trimmed = strings.TrimRight(trimmed, ".,;: ")
		if trimmed == line {
			break
		}
		line = trimmed
	}
	return line
}

// bulletSeparators split multiple items packed into one physical line.
const bulletSeparators = "•·◦▪∙"

// splitItems splits free text into trimmed requirement items, discarding
// blanks and stripping leading bullets and numbering. HTML-looking input is
// flattened to text first.
func splitItems(text string) []string {
	text = stripHTML(text)
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r' || strings.ContainsRune(bulletSeparators, r)
	})

	items := make([]string, 0, len(lines))
	for _, line := range lines {
		line = stripBulletPrefix(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// stripBulletPrefix removes leading bullet glyphs and simple numbering
// ("- item", "* item", "1. item", "2) item").
func stripBulletPrefix(line string) string {
	line = strings.TrimSpace(line)
	line = strings.TrimLeft(line, "-*"+bulletSeparators)
	line = strings.TrimSpace(line)

	// numbering: digits followed by '.' or ')'
	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i > 0 && i < len(line) && (line[i] == '.' || line[i] == ')') {
		line = line[i+1:]
	}
	return strings.TrimSpace(line)
}

// blockClosers are HTML fragments that imply a line break once flattened.
var blockClosers = strings.NewReplacer(
	"<br>", "\n", "<br/>", "\n", "<br />", "\n",
	"</li>", "\n", "</p>", "\n", "</div>", "\n", "</tr>", "\n",
)

// stripHTML flattens HTML-looking text to plain text, preserving item
// boundaries of list markup as newlines.
func stripHTML(text string) string {
	if !strings.Contains(text, "<") || !strings.Contains(text, ">") {
		return text
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(blockClosers.Replace(text)))
	if err != nil {
		return text
	}
	return doc.Text()
}
