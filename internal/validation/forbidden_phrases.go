package validation

import (
	"fmt"
	"strings"
)

// ForbiddenPhrase is a phrase that must never appear in a letter, with the
// reason reported to the caller when it does.
type ForbiddenPhrase struct {
	Phrase string
	Reason string
}

// DefaultForbiddenPhrases returns the built-in blocklist. These phrases leak
// how the letter was produced or read as machine-written.
func DefaultForbiddenPhrases() []ForbiddenPhrase {
	return []ForbiddenPhrase{
		{Phrase: "auf LinkedIn gefunden", Reason: "Reveals scraping source (unprofessional)"},
		{Phrase: "laut meiner Recherche", Reason: "Sounds robotic/AI-generated"},
		{Phrase: "wie ich bei Google sah", Reason: "Reveals research method (unprofessional)"},
		{Phrase: "durch künstliche Intelligenz", Reason: "Never mention AI usage"},
		{Phrase: "meine Analyse ergab", Reason: "Too formal/robotic tone"},
	}
}

// CheckForbiddenPhrases scans the letter for blocklisted phrases.
// Matching is case-insensitive; every phrase found produces one error.
func CheckForbiddenPhrases(letter string, phrases []ForbiddenPhrase) (errors []string, count int) {
	lowered := strings.ToLower(letter)

	for _, fp := range phrases {
		if strings.Contains(lowered, strings.ToLower(fp.Phrase)) {
			errors = append(errors, fmt.Sprintf("Forbidden phrase detected: %q - %s", fp.Phrase, fp.Reason))
			count++
		}
	}

	return errors, count
}
