package role

import (
	"strings"
	"unicode"
)

// FindByKeyword scores every role against free text and returns the best
// match. Scoring: +1 per declared keyword present as a whole-word match in
// the text. An exact equality between the whole text and a single keyword
// outranks any number of partial matches. Ties go to the role with the
// lowest sequence order. Returns ErrInvalidRole when no role scores above
// zero.
func FindByKeyword(text string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(text))
	if needle == "" {
		return Role{}, ErrInvalidRole
	}

	best := -1
	bestScore := 0
	bestExact := false

	// table is sorted by sequence order, so the first strict winner keeps
	// the tie-break for free.
	for i, r := range table {
		score, exact := scoreRole(r, needle)
		if score == 0 {
			continue
		}
		if best == -1 || betterMatch(exact, score, bestExact, bestScore) {
			best = i
			bestScore = score
			bestExact = exact
		}
	}

	if best == -1 {
		return Role{}, ErrInvalidRole
	}
	return table[best], nil
}

// betterMatch reports whether (exact, score) strictly beats the current best.
func betterMatch(exact bool, score int, bestExact bool, bestScore int) bool {
	if exact != bestExact {
		return exact
	}
	return score > bestScore
}

// scoreRole counts whole-word keyword hits for one role and reports whether
// the text equals one of the role's keywords exactly.
func scoreRole(r Role, needle string) (score int, exact bool) {
	for _, kw := range r.Keywords {
		if needle == kw {
			exact = true
			score++
			continue
		}
		if containsWord(needle, kw) {
			score++
		}
	}
	return score, exact
}

// containsWord reports whether kw appears in text bounded by non-alphanumeric
// characters (or the text edges). Handles multi-word keywords.
func containsWord(text, kw string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], kw)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(kw)
		leftOK := idx == 0 || !isWordChar(rune(text[idx-1]))
		rightOK := end == len(text) || !isWordChar(rune(text[end]))
		if leftOK && rightOK {
			return true
		}
		start = idx + 1
		if start >= len(text) {
			return false
		}
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
