package validation

import (
	"fmt"
	"strings"
)

// CountMentions counts case-insensitive, non-overlapping occurrences of the
// company name in the letter. An empty company name counts as zero.
func CountMentions(letter, companyName string) int {
	name := strings.ToLower(strings.TrimSpace(companyName))
	if name == "" {
		return 0
	}
	return strings.Count(strings.ToLower(letter), name)
}

// CheckCompanyMentions validates that the letter actually names the target
// company. Zero mentions is an error; a single mention is a warning.
func CheckCompanyMentions(letter, companyName string) (mentions int, errors, warnings []string) {
	mentions = CountMentions(letter, companyName)

	switch mentions {
	case 0:
		errors = append(errors, fmt.Sprintf("Company name %q not mentioned at all", companyName))
	case 1:
		warnings = append(warnings, "Company name only mentioned once (recommend: 2-3 times)")
	}

	return mentions, errors, warnings
}
