package judge

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/validation"
)

var genericPhrases = []string{
	"innovative kultur",
	"spannendes team",
	"tolle atmosphäre",
	"interessante projekte",
}

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Berlin|München|Hamburg|Köln|Frankfurt|Stuttgart|Prenzlauer Berg|Leipziger Platz`),
	regexp.MustCompile(`(?i)Office|Standort`),
}

var projectKeywords = []string{
	"initiative",
	"proptech",
	"govtech",
	"projekt",
	"programm",
}

// EvaluateCompanySpecificity measures how tailored the letter is to the
// target company, without an LLM call.
func EvaluateCompanySpecificity(letter, companyName string) *types.CompanySpecificity {
	nameCount := validation.CountMentions(letter, companyName)
	lowered := strings.ToLower(letter)

	hasGenericOnly := false
	for _, phrase := range genericPhrases {
		if strings.Contains(lowered, phrase) {
			hasGenericOnly = true
			break
		}
	}

	hasLocation := false
	for _, pattern := range locationPatterns {
		if pattern.MatchString(letter) {
			hasLocation = true
			break
		}
	}

	hasProject := false
	for _, keyword := range projectKeywords {
		if strings.Contains(lowered, keyword) {
			hasProject = true
			break
		}
	}

	score := 0
	if nameCount >= 2 {
		score += 4
	} else if nameCount >= 1 {
		score += 2
	}
	if !hasGenericOnly {
		score += 3
	}
	if hasLocation {
		score += 2
	}
	if hasProject {
		score++
	}
	if score > 10 {
		score = 10
	}

	var issues []string
	if nameCount < 2 {
		issues = append(issues, "Company name mentioned less than 2 times")
	}
	if hasGenericOnly {
		issues = append(issues, "Uses generic phrases")
	}
	if !hasLocation {
		issues = append(issues, "No office location mentioned")
	}

	note := "Strong company-specific content"
	if len(issues) > 0 {
		note = fmt.Sprintf("Issues: %s", strings.Join(issues, "; "))
	}

	return &types.CompanySpecificity{
		CompanyNameCount:  nameCount,
		HasSpecificValues: !hasGenericOnly,
		HasLocation:       hasLocation,
		HasProject:        hasProject,
		Score:             score,
		Note:              note,
	}
}

var genericOpenings = []string{
	"hiermit bewerbe ich mich",
	"mit großem interesse habe ich",
	"ich bewerbe mich um",
}

var enthusiasticClosings = []string{
	"würde mich sehr freuen!!!",
	"stehe jederzeit zur verfügung",
	"ich hoffe auf eine positive antwort",
}

// EvaluateTone checks the opening and closing of the letter for canned
// phrasing.
func EvaluateTone(letter string) *types.ToneCheck {
	runes := []rune(letter)
	opening := strings.ToLower(string(runes[:min(200, len(runes))]))
	closing := strings.ToLower(string(runes[max(0, len(runes)-150):]))

	isGenericOpening := false
	for _, phrase := range genericOpenings {
		if strings.Contains(opening, phrase) {
			isGenericOpening = true
			break
		}
	}

	isEnthusiastic := false
	for _, phrase := range enthusiasticClosings {
		if strings.Contains(closing, phrase) {
			isEnthusiastic = true
			break
		}
	}

	openingScore := 10
	if isGenericOpening {
		openingScore -= 5
	}
	if strings.Contains(opening, "zitat") || strings.Contains(opening, "liebes") {
		openingScore = 10
	}

	closingScore := 10
	if isEnthusiastic {
		closingScore -= 4
	}
	if strings.Contains(closing, "beste grüße") && !isEnthusiastic {
		closingScore = 10
	}

	var notes []string
	if isGenericOpening {
		notes = append(notes, "Generic opening detected")
	}
	if isEnthusiastic {
		notes = append(notes, "Closing too eager")
	}

	note := "Authentic tone"
	if len(notes) > 0 {
		note = strings.Join(notes, "; ")
	}

	return &types.ToneCheck{
		OpeningScore:        openingScore,
		ClosingScore:        closingScore,
		GenericOpening:      isGenericOpening,
		EnthusiasticClosing: isEnthusiastic,
		Note:                note,
	}
}

var (
	quotePattern  = regexp.MustCompile(`["„“](.{20,200})[“”"]|«(.{20,200})»`)
	sourcePattern = regexp.MustCompile(`[-–—]\s*([A-ZÄÖÜ][a-zäöüß]+\s[A-ZÄÖÜ][a-zäöüß']+)|von\s+([A-ZÄÖÜ][a-zäöüß]+\s[A-ZÄÖÜ][a-zäöüß']+)`)
)

var bridgePhrases = []string{
	"resoniert",
	"erinnert mich an",
	"passt zu",
	"spiegelt wider",
	"schnittmengen",
	"maxime",
	"mission",
}

// EvaluateQuoteIntegration detects whether the letter weaves in a company
// quote and how well it is attributed and connected.
func EvaluateQuoteIntegration(letter string) *types.QuoteIntegration {
	if !quotePattern.MatchString(letter) {
		return &types.QuoteIntegration{
			HasQuote: false,
			Note:     "No quote found (optional)",
		}
	}

	source := ""
	if m := sourcePattern.FindStringSubmatch(letter); m != nil {
		if m[1] != "" {
			source = m[1]
		} else {
			source = m[2]
		}
	}

	lowered := strings.ToLower(letter)
	hasBridge := false
	for _, phrase := range bridgePhrases {
		if strings.Contains(lowered, phrase) {
			hasBridge = true
			break
		}
	}

	relevance := 5
	if source != "" {
		relevance += 2
	}
	if hasBridge {
		relevance += 3
	}
	if relevance > 10 {
		relevance = 10
	}

	note := "Quote found but no source cited."
	if source != "" {
		bridgeNote := "Add stronger bridge."
		if hasBridge {
			bridgeNote = "Well connected."
		}
		note = fmt.Sprintf("Quote from %s. %s", source, bridgeNote)
	}

	return &types.QuoteIntegration{
		HasQuote:  true,
		Source:    source,
		Relevance: relevance,
		HasBridge: hasBridge,
		Note:      note,
	}
}
