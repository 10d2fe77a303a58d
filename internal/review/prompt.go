package review

import (
	"fmt"
	"strings"

	"github.com/codeflock/gemreview/internal/github"
)

const reviewInstructions = `You are an expert code reviewer. Review the diffs below carefully.
Only comment on the changes shown; do not speculate about unchanged code.
Be concise and actionable, and point to specific files and hunks.`

const closingInstructions = `Structure your review with the following sections:
1. Overall assessment
2. Issues found
3. Suggestions for improvement
4. Security concerns
5. Performance considerations`

// BuildPrompt assembles the review prompt from the filtered file list and
// optional PR title and description. Pure function: same inputs produce a
// byte-identical prompt.
func BuildPrompt(files []github.FileChange, title, body string) string {
	var b strings.Builder

	b.WriteString("Please review the following pull request.\n\n")

	if title != "" {
		fmt.Fprintf(&b, "Title: %s\n", title)
	}
	if body != "" {
		fmt.Fprintf(&b, "Description: %s\n", body)
	}
	if title != "" || body != "" {
		b.WriteString("\n")
	}

	var totalChanges int
	for _, f := range files {
		totalChanges += f.Changes
	}
	fmt.Fprintf(&b, "Files changed: %d\n", len(files))
	fmt.Fprintf(&b, "Total changes: %d\n\n", totalChanges)

	b.WriteString(reviewInstructions)
	b.WriteString("\n")

	for _, f := range files {
		if f.Patch == "" {
			continue
		}
		fmt.Fprintf(&b, "\n--- %s (%s, +%d/-%d) ---\n", f.Filename, f.Status, f.Additions, f.Deletions)
		b.WriteString(f.Patch)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(closingInstructions)
	b.WriteString("\n")

	return b.String()
}
