package judge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateCompanySpecificity_Strong(t *testing.T) {
	letter := "Acme baut in Berlin an einem Projekt, das mich überzeugt. Acme setzt dabei Maßstäbe."

	result := EvaluateCompanySpecificity(letter, "Acme")

	assert.Equal(t, 2, result.CompanyNameCount)
	assert.True(t, result.HasSpecificValues)
	assert.True(t, result.HasLocation)
	assert.True(t, result.HasProject)
	assert.Equal(t, 10, result.Score)
	assert.Equal(t, "Strong company-specific content", result.Note)
}

func TestEvaluateCompanySpecificity_Generic(t *testing.T) {
	letter := "Ihr spannendes Team hat mich begeistert."

	result := EvaluateCompanySpecificity(letter, "Acme")

	assert.Equal(t, 0, result.CompanyNameCount)
	assert.False(t, result.HasSpecificValues)
	assert.Less(t, result.Score, 7)
	assert.Contains(t, result.Note, "Company name mentioned less than 2 times")
	assert.Contains(t, result.Note, "Uses generic phrases")
}

func TestEvaluateCompanySpecificity_SingleMention(t *testing.T) {
	result := EvaluateCompanySpecificity("Acme interessiert mich.", "Acme")

	assert.Equal(t, 1, result.CompanyNameCount)
	// 2 (one mention) + 3 (no generic phrases) = 5
	assert.Equal(t, 5, result.Score)
}

func TestEvaluateTone_GenericOpening(t *testing.T) {
	letter := "Hiermit bewerbe ich mich auf die ausgeschriebene Stelle. Viele Worte folgen."

	result := EvaluateTone(letter)

	assert.True(t, result.GenericOpening)
	assert.Equal(t, 5, result.OpeningScore)
	assert.Contains(t, result.Note, "Generic opening detected")
}

func TestEvaluateTone_EnthusiasticClosing(t *testing.T) {
	letter := "Ein solider Einstieg in den Brief.\n\nIch hoffe auf eine positive Antwort."

	result := EvaluateTone(letter)

	assert.True(t, result.EnthusiasticClosing)
	assert.Equal(t, 6, result.ClosingScore)
	assert.Contains(t, result.Note, "Closing too eager")
}

func TestEvaluateTone_Authentic(t *testing.T) {
	letter := "Das Zitat Ihres Gründers hat mich sofort angesprochen.\n\nBeste Grüße, Anna"

	result := EvaluateTone(letter)

	assert.False(t, result.GenericOpening)
	assert.False(t, result.EnthusiasticClosing)
	assert.Equal(t, 10, result.OpeningScore)
	assert.Equal(t, 10, result.ClosingScore)
	assert.Equal(t, "Authentic tone", result.Note)
}

func TestEvaluateQuoteIntegration_NoQuote(t *testing.T) {
	result := EvaluateQuoteIntegration("Ein Brief ohne jedes Zitat.")

	assert.False(t, result.HasQuote)
	assert.Equal(t, "No quote found (optional)", result.Note)
}

func TestEvaluateQuoteIntegration_QuoteWithSourceAndBridge(t *testing.T) {
	letter := `"Wir bauen Software, die Menschen wirklich weiterhilft" - Maria Schmidt. Das resoniert stark mit meiner eigenen Arbeit.`

	result := EvaluateQuoteIntegration(letter)

	require.True(t, result.HasQuote)
	assert.Equal(t, "Maria Schmidt", result.Source)
	assert.True(t, result.HasBridge)
	assert.Equal(t, 10, result.Relevance)
	assert.Contains(t, result.Note, "Quote from Maria Schmidt")
	assert.Contains(t, result.Note, "Well connected")
}

func TestEvaluateQuoteIntegration_QuoteWithoutSource(t *testing.T) {
	letter := `„Gemeinsam erreichen wir deutlich mehr als allein" stand auf der Website.`

	result := EvaluateQuoteIntegration(letter)

	require.True(t, result.HasQuote)
	assert.Empty(t, result.Source)
	assert.Equal(t, "Quote found but no source cited.", result.Note)
}
