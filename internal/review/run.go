package review

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/codeflock/gemreview/internal/config"
	"github.com/codeflock/gemreview/internal/filter"
	"github.com/codeflock/gemreview/internal/github"
	"github.com/codeflock/gemreview/internal/redact"
)

// GitHub is the subset of the GitHub client the orchestrator uses.
type GitHub interface {
	GetPullRequest(ctx context.Context, owner, repo string, prNumber int) (*github.PullRequest, error)
	ListFiles(ctx context.Context, owner, repo string, prNumber int) ([]github.FileChange, error)
	CreateComment(ctx context.Context, owner, repo string, prNumber int, body string) error
}

// Generator produces review text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Options identify the pull request and control posting behavior.
type Options struct {
	Owner  string
	Repo   string
	Number int
	DryRun bool

	// Log receives progress lines; defaults to os.Stderr.
	Log io.Writer
}

// Run executes one review: fetch PR metadata and changed files, filter,
// build the prompt, call the model, and post the comment. Any stage failure
// aborts the run; the comment creation is the only external mutation and
// happens last. When every file is filtered out, Run returns a Result with
// an empty Review and neither calls the model nor posts.
func Run(ctx context.Context, gh GitHub, gen Generator, cfg config.Config, opts Options) (*Result, error) {
	logw := opts.Log
	if logw == nil {
		logw = os.Stderr
	}

	pr, err := gh.GetPullRequest(ctx, opts.Owner, opts.Repo, opts.Number)
	if err != nil {
		return nil, fmt.Errorf("fetching PR: %w", err)
	}

	files, err := gh.ListFiles(ctx, opts.Owner, opts.Repo, opts.Number)
	if err != nil {
		return nil, fmt.Errorf("listing PR files: %w", err)
	}

	f := filter.New(cfg.Exclude, cfg.MaxPatchChars)
	var included []github.FileChange
	excluded := 0
	for _, fc := range files {
		if reason, skip := f.ExcludeReason(fc.Filename, fc.Patch); skip {
			fmt.Fprintf(logw, "Excluding %s: %s\n", fc.Filename, reason)
			excluded++
			continue
		}
		if cfg.RedactSecrets {
			fc.Patch = redact.Secrets(fc.Patch)
		}
		included = append(included, fc)
	}

	result := &Result{
		Owner:         opts.Owner,
		Repo:          opts.Repo,
		Number:        opts.Number,
		TotalFiles:    len(files),
		ReviewedFiles: len(included),
		ExcludedFiles: excluded,
	}

	if len(included) == 0 {
		fmt.Fprintln(logw, "No reviewable files after filtering — nothing to review.")
		return result, nil
	}

	prompt := BuildPrompt(included, pr.Title, pr.Body)

	fmt.Fprintf(logw, "Reviewing %d of %d changed files...\n", len(included), len(files))
	text, err := gen.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating review: %w", err)
	}
	result.Review = text

	if opts.DryRun {
		return result, nil
	}

	if err := gh.CreateComment(ctx, opts.Owner, opts.Repo, opts.Number, result.CommentBody()); err != nil {
		return nil, fmt.Errorf("posting comment: %w", err)
	}
	fmt.Fprintf(logw, "Review posted to PR #%d.\n", opts.Number)

	return result, nil
}
