package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/company-profiler/internal/config"
	"github.com/jonathan/company-profiler/internal/crawling"
	"github.com/jonathan/company-profiler/internal/observability"
	"github.com/jonathan/company-profiler/internal/schemas"
	"github.com/spf13/cobra"
)

// urlPrompt is shown when no URL was supplied by flag or config.
const urlPrompt = "Enter company website URL: "

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Extract a structured profile from a company website",
	Long: `Fetches the site root and a fixed list of candidate pages (about, company, products,
solutions, industries, pricing, contact, careers), mines their text for identity,
contact details, proof signals and social links, and prints the profile as JSON.

When --url is not given and the config file has no url, the URL is read from stdin.`,
	RunE: runProfile,
}

var (
	profileURL           string
	profileOut           string
	profileConfigPath    string
	profileTimeout       int
	profileUserAgent     string
	profileSummaryLength int
	profileVerbose       bool
	profileValidate      bool
)

func init() {
	profileCmd.Flags().StringVarP(&profileURL, "url", "u", "", "Company website URL (prompted for when omitted)")
	profileCmd.Flags().StringVarP(&profileOut, "out", "o", "", "Output file for the JSON profile (default: stdout)")
	profileCmd.Flags().StringVarP(&profileConfigPath, "config", "c", "", "Path to JSON config file")
	profileCmd.Flags().IntVar(&profileTimeout, "timeout", 0, "Per-page fetch timeout in seconds (default: 10)")
	profileCmd.Flags().StringVar(&profileUserAgent, "user-agent", "", "User-Agent header sent with every request")
	profileCmd.Flags().IntVar(&profileSummaryLength, "summary-length", 0, "Characters of page text kept in what_they_do (default: 400)")
	profileCmd.Flags().BoolVarP(&profileVerbose, "verbose", "v", false, "Log each fetch and print a summary to stderr")
	profileCmd.Flags().BoolVar(&profileValidate, "validate", false, "Check the profile against the JSON Schema before writing it")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.Resolve(profileConfigPath)
	if err != nil {
		return err
	}

	flagCfg := config.Config{
		URL:            profileURL,
		Out:            profileOut,
		TimeoutSeconds: profileTimeout,
		UserAgent:      profileUserAgent,
		SummaryLength:  profileSummaryLength,
		Verbose:        profileVerbose,
		ValidateOutput: profileValidate,
	}
	cfg := flagCfg.MergeWithDefaults(*fileCfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return executeProfile(ctx, cfg, nil, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// executeProfile runs one extraction with cfg and writes the result. A nil
// fetcher uses the HTTP client configured from cfg.
func executeProfile(ctx context.Context, cfg config.Config, fetcher crawling.Fetcher, stdin io.Reader, stdout, stderr io.Writer) error {
	rawURL := cfg.URL
	if rawURL == "" {
		var err error
		rawURL, err = readURL(stdin, stdout)
		if err != nil {
			return err
		}
	}
	if err := crawling.CheckInput(rawURL); err != nil {
		return err
	}

	opts := &crawling.Options{
		Fetcher:       fetcher,
		Timeout:       cfg.Timeout(),
		UserAgent:     cfg.UserAgent,
		SummaryLength: cfg.SummaryLength,
	}
	if cfg.Verbose {
		opts.Logger = log.New(stderr, "", log.LstdFlags)
	}

	profile := crawling.CrawlCompanyProfile(ctx, rawURL, opts)

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile to JSON: %w", err)
	}

	if cfg.ValidateOutput {
		if err := schemas.ValidateCompanyProfile(jsonBytes); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("profile does not validate against schema: %w", err)
			}
			return fmt.Errorf("could not validate profile: %w", err)
		}
	}

	if cfg.Out == "" {
		_, _ = fmt.Fprintf(stdout, "%s\n", jsonBytes)
	} else {
		outputDir := filepath.Dir(cfg.Out)
		if outputDir != "" && outputDir != "." {
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(cfg.Out, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write profile to %s: %w", cfg.Out, err)
		}
		_, _ = fmt.Fprintf(stdout, "Profile written to %s\n", cfg.Out)
	}

	if cfg.Verbose {
		printer := observability.NewPrinter(stderr)
		printer.PrintCompanyProfile(profile)
		printer.PrintCrawlErrors(profile)
	}

	return nil
}

// readURL prompts on out and reads one line from in.
func readURL(in io.Reader, out io.Writer) (string, error) {
	_, _ = fmt.Fprint(out, urlPrompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read URL: %w", err)
	}
	return strings.TrimSpace(line), nil
}
