package rank

import (
	"fmt"
	"sort"
	"strings"
)

// TipPriority classifies a tip by the rule family that produced it.
type TipPriority string

const (
	PriorityFormatFlaw   TipPriority = "format_flaw"
	PrioritySkillGap     TipPriority = "skill_gap"
	PriorityScore        TipPriority = "score_optimization"
	PriorityBestPractice TipPriority = "best_practice"
	PriorityExcellent    TipPriority = "excellent_match"
)

// Tip is one piece of structured advice. Label is the short bolded lead
// phrase, Body the full sentence; callers choose the markup.
type Tip struct {
	Rule     string      `json:"rule"`
	Priority TipPriority `json:"priority"`
	Label    string      `json:"label"`
	Body     string      `json:"body"`
}

// maxMissingShown caps how many missing skills the skill-gap tip names.
const maxMissingShown = 4

// GenerateTips evaluates the improvement rules in fixed priority order and
// returns the deduplicated tip list. Deterministic: identical inputs always
// produce the identical list. When the resume is an excellent match
// (score ≥ 85, no missing required skills, name found, email and phone
// present) the accumulated tips are discarded and the single excellent-match
// tip is returned instead.
func GenerateTips(name Name, contact Contact, score float64, current, required map[string]bool) []Tip {
	var tips []Tip

	if !name.Found {
		tips = append(tips, Tip{
			Rule:     "name_extraction",
			Priority: PriorityFormatFlaw,
			Label:    "Name Extraction Failure",
			Body:     "Your name was difficult to extract. Use a clear, bold font and place it explicitly on the first line.",
		})
	}
	if !contact.HasEmail() {
		tips = append(tips, Tip{
			Rule:     "missing_email",
			Priority: PriorityFormatFlaw,
			Label:    "Missing Email",
			Body:     "Your professional email address is missing or unclear. Ensure it is explicitly present and easy to read.",
		})
	}
	if !contact.HasPhone() {
		tips = append(tips, Tip{
			Rule:     "missing_phone",
			Priority: PriorityFormatFlaw,
			Label:    "Missing Phone",
			Body:     "Your phone number was not easily found. Label it clearly (e.g. 'Mobile:') to ensure quick contact.",
		})
	}

	missing := missingSkills(current, required)
	if len(missing) > 0 {
		shown := missing
		if len(shown) > maxMissingShown {
			shown = shown[:maxMissingShown]
		}
		tips = append(tips, Tip{
			Rule:     "skill_gap",
			Priority: PrioritySkillGap,
			Label:    "Critical Skill Gap",
			Body: fmt.Sprintf(
				"You are missing key required skills like: %s. Update your resume to include projects or experience demonstrating these abilities.",
				TitleCase(strings.Join(shown, ", "))),
		})
	}

	switch {
	case score < 40:
		tips = append(tips, Tip{
			Rule:     "low_score",
			Priority: PriorityScore,
			Label:    "Low Match Score",
			Body:     "Your resume lacks fundamental keywords from the JD. Review the JD and integrate those specific technical skills and context (verbs, industry terms) into your bullet points to boost your score.",
		})
	case score < 70:
		tips = append(tips, Tip{
			Rule:     "mid_score",
			Priority: PriorityScore,
			Label:    "Optimization",
			Body:     "Your score is decent, but you must focus on quantifying your achievements (e.g. 'improved query speed by 25%', 'managed team of 5').",
		})
	}

	if len(current) < 5 {
		tips = append(tips, Tip{
			Rule:     "project_detail",
			Priority: PriorityBestPractice,
			Label:    "Project Detail",
			Body:     "Ensure you list the specific technologies used under each project/experience section for better parsing.",
		})
	}
	if len(tips) < 5 {
		tips = append(tips, Tip{
			Rule:     "readability",
			Priority: PriorityBestPractice,
			Label:    "Readability & ATS",
			Body:     "Keep all bullet points concise (1-2 lines). Use strong action verbs at the start of every sentence (e.g. Developed, Managed, Implemented).",
		})
	}

	if score >= 85 && len(missing) == 0 && name.Found && contact.HasEmail() && contact.HasPhone() {
		return []Tip{{
			Rule:     "excellent_match",
			Priority: PriorityExcellent,
			Label:    "Excellent Match!",
			Body:     "Your resume is highly relevant and well-formatted. Focus on preparing interview questions that highlight your quantified achievements.",
		}}
	}

	return dedupTips(tips)
}

// missingSkills returns required − current, sorted so the skill-gap tip is
// reproducible for a given input.
func missingSkills(current, required map[string]bool) []string {
	var missing []string
	for skill := range required {
		if !current[skill] {
			missing = append(missing, skill)
		}
	}
	sort.Strings(missing)
	return missing
}

// dedupTips drops any tip whose (Label, Body) pair already appeared. The
// current rule set never collides, but the contract holds if rules evolve.
func dedupTips(tips []Tip) []Tip {
	seen := make(map[string]bool, len(tips))
	out := tips[:0]
	for _, t := range tips {
		key := t.Label + "\x00" + t.Body
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return out
}

// IsExcellentMatch reports whether tips is the single excellent-match tip.
func IsExcellentMatch(tips []Tip) bool {
	return len(tips) == 1 && tips[0].Priority == PriorityExcellent
}

// RenderTips renders tips as a numbered markdown block with bolded lead
// phrases. The excellent-match tip renders as a single unnumbered line.
func RenderTips(tips []Tip) string {
	if IsExcellentMatch(tips) {
		return fmt.Sprintf("✅ **%s** %s", tips[0].Label, tips[0].Body)
	}
	lines := make([]string, len(tips))
	for i, t := range tips {
		lines[i] = fmt.Sprintf("**%d.** **%s:** %s", i+1, t.Label, t.Body)
	}
	return strings.Join(lines, "\n")
}
