package rank

import (
	"strings"
)

// UnknownCandidate is the rendering of a failed name extraction. It exists
// only at the output boundary; internal logic branches on Name.Found.
const UnknownCandidate = "Unknown Candidate"

// Name is the result of name extraction: a title-cased value when Found,
// otherwise the UnknownCandidate rendering.
type Name struct {
	Value string
	Found bool
}

// Display returns the candidate-facing name string.
func (n Name) Display() string {
	if !n.Found {
		return UnknownCandidate
	}
	return n.Value
}

// Entity is a single named entity produced by an EntityRecognizer.
type Entity struct {
	Text  string
	Label string
}

// EntityRecognizer is an optional capability for person-entity detection.
// A nil recognizer, or one that errors, degrades name extraction to the
// line heuristic alone — it never fails the pipeline.
type EntityRecognizer interface {
	Recognize(text string) ([]Entity, error)
}

// nameBlocklist holds section-header terms that disqualify a line (or an
// entity) from being a name. Compared against the uppercased candidate.
var nameBlocklist = []string{
	"CURRICULUM VITAE", "RESUME", "PROFILE", "PROFESSIONAL SUMMARY",
	"WORK EXPERIENCE", "EDUCATION", "SKILLS", "CONTACT INFORMATION",
	"COMPUTER SCIENCE", "BACHELORS", "MASTERS",
}

// maxNameLines bounds the line heuristic to the top of the document.
const maxNameLines = 10

// ExtractName finds the candidate's name. Tier 1 scans the first few lines
// for an all-caps or title-cased multi-word line; tier 2 falls back to the
// recognizer over the header window; otherwise the result is not Found.
func ExtractName(text string, rec EntityRecognizer) Name {
	lines := strings.Split(text, "\n")
	if len(lines) > maxNameLines {
		lines = lines[:maxNameLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !isUpperCased(line) && !isTitleCased(line) {
			continue
		}
		if len(strings.Fields(line)) < 2 || containsDigit(line) || blocklisted(line) {
			continue
		}
		return Name{Value: TitleCase(line), Found: true}
	}

	if rec != nil {
		ents, err := rec.Recognize(header(text))
		if err == nil {
			for _, ent := range ents {
				if ent.Label != "PERSON" {
					continue
				}
				if blocklisted(ent.Text) || len(strings.Fields(ent.Text)) < 2 || containsDigit(ent.Text) {
					continue
				}
				return Name{Value: TitleCase(ent.Text), Found: true}
			}
		}
	}

	return Name{}
}

func blocklisted(candidate string) bool {
	upper := strings.ToUpper(candidate)
	for _, term := range nameBlocklist {
		if strings.Contains(upper, term) {
			return true
		}
	}
	return false
}
