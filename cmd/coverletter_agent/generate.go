package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/config"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/pipeline"
	"github.com/yannikgaletto-art/job-automation-saas-sub000/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cover letter through the quality loop",
	Long: `Assembles the generation context (job posting, user profile, writing style,
company research), then iterates generation -> validation -> quality judging
until the letter passes or the iteration limit is reached.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath     string
	genJobID          string
	genJobFile        string
	genUserID         string
	genCompanyWebsite string
	genAPIKey         string
	genDatabaseURL    string
	genOutPath        string
	genVerbose        bool
)

func init() {
	// Config file flag (processed first)
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCmd.Flags().StringVar(&genJobID, "job-id", "", "ID of a stored job posting (mutually exclusive with --job-file)")
	generateCmd.Flags().StringVarP(&genJobFile, "job-file", "j", "", "Path to a job posting JSON file (mutually exclusive with --job-id)")
	generateCmd.Flags().StringVarP(&genUserID, "user", "u", "", "User ID for profile and writing samples")
	generateCmd.Flags().StringVarP(&genCompanyWebsite, "company-website", "c", "", "Company website URL for research (optional)")
	generateCmd.Flags().StringVarP(&genOutPath, "out", "o", "", "Write the final letter to this file instead of stdout")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for profiles, research cache and run auditing
	generateCmd.Flags().StringVar(&genDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(generateCmd)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("job-id") {
		cfg.JobID = genJobID
	}
	if cmd.Flags().Changed("job-file") {
		cfg.JobFile = genJobFile
	}
	if cmd.Flags().Changed("user") {
		cfg.UserID = genUserID
	}
	if cmd.Flags().Changed("company-website") {
		cfg.CompanyWebsite = genCompanyWebsite
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = genDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.JobID == "" && cfg.JobFile == "" {
		return fmt.Errorf("either --job-id or --job-file must be provided (via flag or config)")
	}
	if cfg.JobID != "" && cfg.JobFile != "" {
		return fmt.Errorf("--job-id and --job-file are mutually exclusive; provide only one")
	}

	// Step 5: API Key handling
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	// Step 6: Database URL handling (optional; without it profiles, research
	// caching and run auditing are skipped)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.JobID != "" && cfg.DatabaseURL == "" {
		return fmt.Errorf("--job-id requires a database; set DATABASE_URL or --db-url, or use --job-file")
	}

	opts := pipeline.RunOptions{
		UserID:            cfg.UserID,
		JobID:             cfg.JobID,
		CompanyWebsiteURL: cfg.CompanyWebsite,
		APIKey:            cfg.APIKey,
		DatabaseURL:       cfg.DatabaseURL,
		Verbose:           cfg.Verbose,
	}

	// A job file bypasses the database lookup
	if cfg.JobFile != "" {
		job, err := loadJobFile(cfg.JobFile)
		if err != nil {
			return err
		}
		opts.Job = job
	}

	result, err := pipeline.RunQualityLoop(ctx, opts)
	if err != nil {
		return err
	}

	if genOutPath != "" {
		if err := os.WriteFile(genOutPath, []byte(result.Text), 0644); err != nil {
			return fmt.Errorf("failed to write letter to %s: %w", genOutPath, err)
		}
		fmt.Printf("Letter written to %s\n", genOutPath)
		return nil
	}

	fmt.Println()
	fmt.Println(result.Text)
	return nil
}

// loadJobFile reads a job posting from a JSON file
func loadJobFile(path string) (*types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	var job types.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to parse job file %s: %w", path, err)
	}

	if job.Title == "" || job.Company == "" {
		return nil, fmt.Errorf("job file %s must contain at least 'title' and 'company'", path)
	}

	return &job, nil
}
