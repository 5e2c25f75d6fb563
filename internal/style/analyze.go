// Package style extracts writing-style signals from the user's own cover
// letters so generated drafts can imitate their voice.
package style

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/llm"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

// minSampleLength is the minimum sample size worth analyzing. Shorter texts
// do not carry enough signal for a stable profile.
const minSampleLength = 100

// maxAnalyzeLength caps the text sent to the model. Cover letters run about
// 1500 characters, so 2000 covers a full letter.
const maxAnalyzeLength = 2000

// Analyzer derives a structured style profile from writing samples.
type Analyzer struct {
	llm  llm.Client
	tier llm.ModelTier
}

// NewAnalyzer creates an Analyzer using the lite tier. Style extraction is a
// cheap classification task.
func NewAnalyzer(client llm.Client) *Analyzer {
	return &Analyzer{llm: client, tier: llm.TierLite}
}

// Analyze extracts tone, sentence length, connectives, and salutation from a
// writing sample. Any failure degrades to DefaultProfile: a letter can always
// be generated with the neutral house style.
func (a *Analyzer) Analyze(ctx context.Context, sample string) types.StyleProfile {
	if len(sample) < minSampleLength {
		fmt.Println("⚠️ Writing sample too short for style analysis")
		return DefaultProfile()
	}

	if len(sample) > maxAnalyzeLength {
		// Back off to a rune boundary so umlauts at the cut survive.
		cut := maxAnalyzeLength
		for cut > 0 && !utf8.RuneStart(sample[cut]) {
			cut--
		}
		sample = sample[:cut]
	}

	prompt := llm.BuildExtractionPrompt(llm.WritingStyleSchema(), sample)
	raw, err := a.llm.GenerateJSON(ctx, prompt, a.tier)
	if err != nil {
		fmt.Printf("❌ Style analysis failed: %v\n", err)
		return DefaultProfile()
	}

	var profile types.StyleProfile
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &profile); err != nil {
		fmt.Printf("❌ Failed to parse style analysis: %v\n", err)
		return DefaultProfile()
	}

	fillDefaults(&profile)
	fmt.Printf("📊 Style analysis: %s, %s sentences\n", profile.Tone, profile.SentenceLength)
	return profile
}

// DefaultProfile is the neutral German application style used when no sample
// is available or analysis fails.
func DefaultProfile() types.StyleProfile {
	return types.StyleProfile{
		Tone:           "professional",
		SentenceLength: "medium",
		Connectives:    []string{"Daher", "Deshalb", "Zudem", "Außerdem", "Gleichzeitig"},
		Salutation:     "Sehr geehrte Damen und Herren",
	}
}

// fillDefaults backfills fields the model left empty so downstream prompt
// assembly never sees a hole.
func fillDefaults(profile *types.StyleProfile) {
	defaults := DefaultProfile()
	if profile.Tone == "" {
		profile.Tone = defaults.Tone
	}
	if profile.SentenceLength == "" {
		profile.SentenceLength = defaults.SentenceLength
	}
	if len(profile.Connectives) == 0 {
		profile.Connectives = defaults.Connectives
	}
	if profile.Salutation == "" {
		profile.Salutation = defaults.Salutation
	}
}
