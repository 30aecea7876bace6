// Package complexity scores free-text task descriptions and classifies them
// as simple, moderate, or complex. The scoring is a keyword heuristic with
// fixed point weights; the arithmetic is intentionally preserved as-is,
// including substring quirks like "application" also matching "app".
package complexity

import (
	"regexp"
	"strconv"
	"strings"
)

// Level classifies a task description.
type Level string

const (
	Simple   Level = "simple"
	Moderate Level = "moderate"
	Complex  Level = "complex"
)

// Task types detected from the description, in priority order.
const (
	TaskBugFix        = "bug-fix"
	TaskRefactor      = "refactor"
	TaskDocumentation = "documentation"
	TaskFeature       = "feature"
	TaskUnknown       = "unknown"
)

// Analysis is the derived result of scoring a description. It is never
// persisted.
type Analysis struct {
	Level                Level    `json:"level"`
	Score                int      `json:"score"`
	TaskType             string   `json:"task_type"`
	EstimatedEffort      string   `json:"estimated_effort"`
	SpecFirstRecommended bool     `json:"spec_first_recommended"`
	Features             []string `json:"features,omitempty"`
}

// Keyword lists with their point weights. Scanned independently: a word in
// two lists scores in both.
var (
	highKeywords = []string{
		"app", "application", "system", "platform", "enterprise", "full",
		"complete", "entire", "build", "create-from-scratch", "architecture",
		"infrastructure", "microservice", "distributed",
	}
	mediumKeywords = []string{
		"integrate", "refactor", "redesign", "migrate", "convert",
		"dashboard", "admin", "management", "authentication", "authorization",
	}
	componentWords = []string{"page", "screen", "view", "component", "feature", "module"}
	archKeywords   = []string{
		"design", "architecture", "structure", "pattern", "framework",
		"technology stack", "tech stack", "database schema", "api design",
	}
)

// countedComponents matches "<number> <component word>" phrases.
var countedComponents = regexp.MustCompile(`(\d+)\s+(?:pages?|screens?|views?|components?|features?|modules?)`)

// bulletLine matches a leading bullet or numbered-list marker.
var bulletLine = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)])\s+(.+)$`)

// withClause captures the phrase following "with" up to a sentence break.
// Case-insensitive: feature extraction runs over the original-cased
// description, so a sentence-initial "With" must match too.
var withClause = regexp.MustCompile(`(?i)with\s+([^.\n]+)`)

// maxFeatures caps the extracted feature list.
const maxFeatures = 10

// Analyze scores a task description. Empty or whitespace-only input yields
// a zero-score simple/unknown analysis; it never fails.
func Analyze(description string) Analysis {
	text := strings.ToLower(description)

	score := 0
	for _, kw := range highKeywords {
		if strings.Contains(text, kw) {
			score += 2
		}
	}
	for _, kw := range mediumKeywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	for _, w := range componentWords {
		score += strings.Count(text, w)
	}
	for _, m := range countedComponents.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 3 {
			score += n
		}
	}
	for _, kw := range archKeywords {
		if strings.Contains(text, kw) {
			score += 3
		}
	}

	level := classify(score)
	return Analysis{
		Level:                level,
		Score:                score,
		TaskType:             detectTaskType(text),
		EstimatedEffort:      effortFor(level),
		SpecFirstRecommended: level == Complex,
		Features:             extractFeatures(description),
	}
}

func classify(score int) Level {
	switch {
	case score >= 6:
		return Complex
	case score >= 3:
		return Moderate
	default:
		return Simple
	}
}

// detectTaskType runs the fixed priority chain over substrings; the first
// matching category wins.
func detectTaskType(text string) string {
	switch {
	case containsAny(text, "bug", "fix", "error"):
		return TaskBugFix
	case containsAny(text, "refactor", "improve", "optimize"):
		return TaskRefactor
	case containsAny(text, "doc", "readme", "comment"):
		return TaskDocumentation
	case containsAny(text, "feature", "add", "create", "build"):
		return TaskFeature
	default:
		return TaskUnknown
	}
}

func containsAny(text string, subs ...string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func effortFor(level Level) string {
	switch level {
	case Complex:
		return "1+ weeks"
	case Moderate:
		return "2-5 days"
	default:
		return "<1 day"
	}
}

// extractFeatures pulls candidate feature names from bullet/numbered lines
// and "with X and Y" clauses. Duplicates are allowed; entries shorter than
// four characters are dropped; the list is capped at maxFeatures.
func extractFeatures(description string) []string {
	var features []string

	for _, line := range strings.Split(description, "\n") {
		if m := bulletLine.FindStringSubmatch(line); m != nil {
			features = appendFeature(features, m[1])
		}
	}

	for _, m := range withClause.FindAllStringSubmatch(description, -1) {
		for _, part := range splitConjunction(m[1]) {
			features = appendFeature(features, part)
		}
	}

	return features
}

// splitConjunction breaks "X, Y and Z" into its parts.
func splitConjunction(clause string) []string {
	var parts []string
	for _, chunk := range strings.Split(clause, ",") {
		for _, p := range strings.Split(chunk, " and ") {
			parts = append(parts, p)
		}
	}
	return parts
}

func appendFeature(features []string, candidate string) []string {
	if len(features) >= maxFeatures {
		return features
	}
	trimmed := strings.TrimSpace(candidate)
	if len(trimmed) <= 3 {
		return features
	}
	return append(features, trimmed)
}
