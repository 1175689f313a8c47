// Package rank implements heuristic resume parsing and job-match scoring:
// contact/name/skill extraction, bag-of-words similarity, rule-based
// improvement tips, and the batch ranking pipeline that ties them together.
//
// Everything here operates on already-decoded UTF-8 text. Document decoding
// lives in internal/engine/extract; the optional person-entity recognizer is
// injected (see EntityRecognizer).
package rank

import (
	"sort"
	"strings"
)

// DefaultVocabulary is the built-in skill keyword list, used when no
// vocabulary is configured. Matching is token-based, so multi-word entries
// ("machine learning") only ever match via config-supplied single tokens.
var DefaultVocabulary = []string{
	"python", "java", "c++", "sql", "machine learning", "data analysis",
	"communication", "project management", "streamlit", "react", "html", "css",
	"javascript", "git", "github", "leetcode", "bootstrap", "nlp", "django", "next.js",
	"aws", "docker", "kubernetes", "tensorflow", "pytorch", "sass", "typescript",
}

// Vocabulary is a case-insensitive set of recognized skill keywords.
// It is read-only after construction and safe for concurrent use.
type Vocabulary struct {
	terms map[string]bool
}

// NewVocabulary builds a vocabulary from raw terms, lowercasing and
// deduplicating. Blank entries are dropped.
func NewVocabulary(terms []string) Vocabulary {
	m := make(map[string]bool, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			m[t] = true
		}
	}
	return Vocabulary{terms: m}
}

// Has reports whether term is in the vocabulary (case-insensitive).
func (v Vocabulary) Has(term string) bool {
	return v.terms[strings.ToLower(term)]
}

// Len returns the number of distinct terms.
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns all vocabulary terms, sorted.
func (v Vocabulary) Terms() []string {
	out := make([]string, 0, len(v.terms))
	for t := range v.terms {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// RequiredSkills computes the skill set a job description asks for:
// JD tokens ∩ vocabulary. An empty result is valid — the caller may warn
// but ranking proceeds.
func RequiredSkills(jd string, vocab Vocabulary) map[string]bool {
	tokens := TokenSet(jd)
	required := make(map[string]bool)
	for term := range vocab.terms {
		if tokens[term] {
			required[term] = true
		}
	}
	return required
}

// SortedSkills renders a skill set as a sorted slice for stable output.
func SortedSkills(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
