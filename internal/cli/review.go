package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codeflock/gemreview/internal/config"
	"github.com/codeflock/gemreview/internal/gemini"
	"github.com/codeflock/gemreview/internal/github"
	"github.com/codeflock/gemreview/internal/output"
	"github.com/codeflock/gemreview/internal/review"
)

var (
	flagOwner         string
	flagRepo          string
	flagAPIKey        string
	flagModel         string
	flagExclude       string
	flagMaxPatchChars int
	flagFormat        string
	flagOut           string
	flagDryRun        bool
	flagNoRedact      bool
)

var reviewCmd = &cobra.Command{
	Use:   "review <pr-number>",
	Short: "Review a pull request and post the result as a comment",
	Long:  "Fetch the PR's changed files from GitHub, filter out generated and oversized files, ask Gemini for a review, and post it as a PR comment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prNumber, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid PR number %q\n", args[0])
			exitCode = ExitUsageError
			return nil
		}

		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		owner, repo := flagOwner, flagRepo
		if owner == "" || repo == "" {
			detected, detectedRepo, err := github.DetectRepo()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\nUse --owner and --repo flags to specify manually.\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
			if owner == "" {
				owner = detected
			}
			if repo == "" {
				repo = detectedRepo
			}
		}

		ghClient, err := github.NewClient()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		genCfg := gemini.GenerationConfig{
			Temperature:     cfg.Temperature,
			TopK:            cfg.TopK,
			TopP:            cfg.TopP,
			MaxOutputTokens: cfg.MaxOutputTokens,
		}
		genClient, err := gemini.New(flagAPIKey, cfg.Model, genCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		ctx := context.Background()

		fmt.Fprintf(os.Stderr, "Reviewing PR #%d in %s/%s with %s...\n", prNumber, owner, repo, cfg.Model)
		result, err := review.Run(ctx, ghClient, genClient, cfg, review.Options{
			Owner:  owner,
			Repo:   repo,
			Number: prNumber,
			DryRun: flagDryRun,
		})
		if err != nil {
			if gemini.IsAuthError(err) {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				exitCode = ExitAuthError
				return nil
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		if flagDryRun && result.Review != "" {
			fmt.Fprintf(os.Stderr, "Dry run: not posting to GitHub.\n")
			if err := output.WriteResult(result, cfg.Format, flagOut); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
				exitCode = ExitRuntimeError
				return nil
			}
		}

		return nil
	},
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagExclude != "" {
		m["exclude"] = flagExclude
	}
	if flagMaxPatchChars > 0 {
		m["maxPatchChars"] = strconv.Itoa(flagMaxPatchChars)
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagNoRedact {
		m["redactSecrets"] = "false"
	}
	return m
}

func init() {
	reviewCmd.Flags().StringVar(&flagOwner, "owner", "", "GitHub repository owner (auto-detected if omitted)")
	reviewCmd.Flags().StringVar(&flagRepo, "repo", "", "GitHub repository name (auto-detected if omitted)")
	reviewCmd.Flags().StringVar(&flagAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	reviewCmd.Flags().StringVar(&flagModel, "model", "", "Gemini model name")
	reviewCmd.Flags().StringVar(&flagExclude, "exclude", "", "Exclusion patterns (comma-separated, replaces built-ins)")
	reviewCmd.Flags().IntVar(&flagMaxPatchChars, "max-patch-chars", 0, "Per-file patch size limit in characters")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Dry-run output format (text, json)")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Dry-run output file path (default: stdout)")
	reviewCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Run the review but don't post to GitHub")
	reviewCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}
