package rank

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
)

// defaultWorkers bounds concurrent document processing. Extraction is pure
// CPU work over in-memory text, so a small pool is plenty.
const defaultWorkers = 4

// Document is one resume submitted for ranking. DecodeErr carries a decode
// failure from the text-extraction collaborator; such a document yields an
// error result without running extraction.
type Document struct {
	ID        string
	Text      string
	DecodeErr string
}

// CandidateResult is the per-resume output record.
type CandidateResult struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameFound     bool     `json:"name_found"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Skills        []string `json:"skills"`
	MissingSkills []string `json:"missing_skills"`
	MatchScore    float64  `json:"match_score"`
	Tips          []Tip    `json:"tips,omitempty"`
	TipsText      string   `json:"tips_text,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// Ranking is the output of one pipeline invocation: the required skills
// detected in the JD plus one result per submitted document, sorted by
// match score descending (ties keep input order).
type Ranking struct {
	RequiredSkills []string          `json:"required_skills"`
	Results        []CandidateResult `json:"results"`
}

// Pipeline runs extraction, scoring and tip generation over a batch of
// documents. Safe for concurrent use; all state is per-invocation.
type Pipeline struct {
	Vocab      Vocabulary
	Recognizer EntityRecognizer
	Workers    int

	// Extraction hooks default to the package functions; tests swap them
	// to probe call counts.
	extractContact func(string) Contact
	extractName    func(string, EntityRecognizer) Name
	extractSkills  func(string, Vocabulary) map[string]bool
	similarity     func(string, string) float64
}

// NewPipeline builds a pipeline over the given vocabulary. rec may be nil
// (name extraction then runs heuristic-only).
func NewPipeline(vocab Vocabulary, rec EntityRecognizer) *Pipeline {
	return &Pipeline{
		Vocab:          vocab,
		Recognizer:     rec,
		Workers:        defaultWorkers,
		extractContact: ExtractContact,
		extractName:    ExtractName,
		extractSkills:  ExtractSkills,
		similarity:     Similarity,
	}
}

// Rank processes every document independently against the job description
// and returns results sorted by score. A failing document is reported in
// its own result; the rest of the batch is unaffected. Documents sharing an
// ID are processed once and the memoized result is repeated, scoped to this
// invocation only.
func (p *Pipeline) Rank(ctx context.Context, docs []Document, jd string) Ranking {
	required := RequiredSkills(jd, p.Vocab)
	if len(required) == 0 {
		slog.Warn("no required skills detected in job description", slog.Int("vocabulary_size", p.Vocab.Len()))
	}

	// First occurrence of each ID wins; later duplicates reuse its result.
	var unique []Document
	seen := make(map[string]bool, len(docs))
	for _, d := range docs {
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		unique = append(unique, d)
	}

	workers := p.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	memo := make(map[string]CandidateResult, len(unique))
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for _, d := range unique {
		wg.Add(1)
		sem <- struct{}{}
		go func(d Document) {
			defer wg.Done()
			defer func() { <-sem }()
			res := p.process(ctx, d, required, jd)
			mu.Lock()
			memo[d.ID] = res
			mu.Unlock()
		}(d)
	}
	wg.Wait()

	results := make([]CandidateResult, 0, len(docs))
	for _, d := range docs {
		results = append(results, memo[d.ID])
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return Ranking{RequiredSkills: SortedSkills(required), Results: results}
}

// process runs the full per-document analysis. Panics are contained and
// reported on the result so one bad document cannot abort the batch.
func (p *Pipeline) process(ctx context.Context, doc Document, required map[string]bool, jd string) (res CandidateResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("resume processing panic", slog.String("id", doc.ID), slog.Any("panic", r))
			res = CandidateResult{ID: doc.ID, Name: UnknownCandidate, Error: fmt.Sprintf("processing failed: %v", r)}
		}
	}()

	if doc.DecodeErr != "" {
		return CandidateResult{ID: doc.ID, Name: UnknownCandidate, Error: doc.DecodeErr}
	}
	if err := ctx.Err(); err != nil {
		return CandidateResult{ID: doc.ID, Name: UnknownCandidate, Error: err.Error()}
	}

	contact := p.extractContact(doc.Text)
	name := p.extractName(doc.Text, p.Recognizer)
	skills := p.extractSkills(doc.Text, p.Vocab)
	score := round2(p.similarity(doc.Text, jd))

	tips := GenerateTips(name, contact, score, skills, required)

	return CandidateResult{
		ID:            doc.ID,
		Name:          name.Display(),
		NameFound:     name.Found,
		Email:         contact.Email,
		Phone:         contact.Phone,
		Skills:        SortedSkills(skills),
		MissingSkills: missingSkills(skills, required),
		MatchScore:    score,
		Tips:          tips,
		TipsText:      RenderTips(tips),
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
