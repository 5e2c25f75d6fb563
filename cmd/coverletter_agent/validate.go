package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/observability"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Run the deterministic checks against an existing letter",
	Long:  `Validates a letter file against the hard quality gates: word count, paragraph structure, company mentions and forbidden phrases. No API key needed.`,
	RunE:  runValidateCmd,
}

var (
	validateLetterPath string
	validateCompany    string
)

func init() {
	validateCmd.Flags().StringVarP(&validateLetterPath, "letter", "l", "", "Path to the letter text file (required)")
	validateCmd.Flags().StringVarP(&validateCompany, "company", "c", "", "Company name the letter addresses (required)")
	_ = validateCmd.MarkFlagRequired("letter")
	_ = validateCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(validateCmd)
}

func runValidateCmd(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(validateLetterPath)
	if err != nil {
		return fmt.Errorf("failed to read letter file %s: %w", validateLetterPath, err)
	}

	result := validation.ValidateLetter(string(data), validateCompany)

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintValidation(result)

	if !result.IsValid {
		return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
	}

	fmt.Println("Validation passed")
	return nil
}
