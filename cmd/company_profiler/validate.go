package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/company-profiler/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a profile JSON file against the company profile schema",
	Long:  "Checks that a JSON file produced by the profile command has every section, uses the not_found sentinel correctly and carries no unknown fields.",
	RunE:  runValidate,
}

var validateFile string

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "Path to profile JSON file (required)")

	if err := validateCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	content, err := os.ReadFile(validateFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	if err := schemas.ValidateCompanyProfile(content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation failed:\n%s", validationErr.Error())
			return fmt.Errorf("validation found %d error(s)", len(validationErr.Errors))
		}
		return fmt.Errorf("failed to validate profile: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Validation passed: %s\n", validateFile)
	return nil
}
