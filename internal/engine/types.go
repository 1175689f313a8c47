package engine

import "github.com/anatolykoptev/go_resume/internal/engine/rank"

// --- Resume ranking tool types ---

// RankDocument is one resume submitted to resume_rank. Provide Text for
// already-decoded content, or Data (+ Format or Filename) for raw file bytes.
type RankDocument struct {
	ID       string `json:"id,omitempty" jsonschema:"Stable document identifier. Duplicate IDs are processed once per batch. Auto-assigned when empty"`
	Text     string `json:"text,omitempty" jsonschema:"Resume plain text (UTF-8). Provide either text or data"`
	Data     string `json:"data,omitempty" jsonschema:"Base64-encoded document bytes (PDF, DOCX or plain text)"`
	Format   string `json:"format,omitempty" jsonschema:"Document format for data: pdf, docx, txt. Sniffed from filename when empty"`
	Filename string `json:"filename,omitempty" jsonschema:"Original filename, used as ID fallback and for format sniffing"`
}

// ResumeRankInput is the input for the resume_rank tool.
type ResumeRankInput struct {
	JobDescription string         `json:"job_description" jsonschema:"Job description text to rank against (plain text or HTML)"`
	Documents      []RankDocument `json:"documents" jsonschema:"Resumes to extract, score and rank"`
}

// ResumeRankOutput is the structured output for resume_rank.
type ResumeRankOutput struct {
	RequiredSkills []string               `json:"required_skills"`
	Results        []rank.CandidateResult `json:"results"`
	Summary        string                 `json:"summary"`
}

// --- Single-resume analysis tool types ---

// ResumeAnalyzeInput is the input for the resume_analyze tool.
type ResumeAnalyzeInput struct {
	Resume         string `json:"resume" jsonschema:"Resume plain text to analyze"`
	JobDescription string `json:"job_description" jsonschema:"Job description to score against (plain text or HTML)"`
}

// ResumeAnalyzeOutput is the structured output for resume_analyze.
type ResumeAnalyzeOutput struct {
	RequiredSkills []string             `json:"required_skills"`
	Result         rank.CandidateResult `json:"result"`
	Summary        string               `json:"summary"`
}

// --- Field extraction tool types ---

// ResumeExtractInput is the input for the resume_extract tool.
type ResumeExtractInput struct {
	Text     string `json:"text,omitempty" jsonschema:"Resume plain text. Provide either text or data"`
	Data     string `json:"data,omitempty" jsonschema:"Base64-encoded document bytes (PDF, DOCX or plain text)"`
	Format   string `json:"format,omitempty" jsonschema:"Document format for data: pdf, docx, txt. Sniffed from filename when empty"`
	Filename string `json:"filename,omitempty" jsonschema:"Original filename, used for format sniffing"`
}

// ResumeExtractOutput is the structured output for resume_extract.
type ResumeExtractOutput struct {
	Name      string   `json:"name"`
	NameFound bool     `json:"name_found"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Skills    []string `json:"skills"`
	Summary   string   `json:"summary"`
}

// --- Vocabulary tool types ---

// SkillVocabularyInput is the (empty) input for the skill_vocabulary tool.
type SkillVocabularyInput struct{}

// SkillVocabularyOutput lists the active skill vocabulary.
type SkillVocabularyOutput struct {
	Count  int      `json:"count"`
	Skills []string `json:"skills"`
}
