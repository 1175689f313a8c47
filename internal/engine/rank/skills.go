package rank

// ExtractSkills returns the resume's skill set: text tokens ∩ vocabulary.
// Matching is case-insensitive and token-based, so only single-token
// vocabulary terms can match. Empty or whitespace-only text yields an
// empty set, never an error.
func ExtractSkills(text string, vocab Vocabulary) map[string]bool {
	tokens := TokenSet(text)
	found := make(map[string]bool)
	for term := range vocab.terms {
		if tokens[term] {
			found[term] = true
		}
	}
	return found
}
