package review

import (
	"fmt"
	"strings"
)

// Result is the outcome of a single review run.
type Result struct {
	Owner         string `json:"owner"`
	Repo          string `json:"repo"`
	Number        int    `json:"number"`
	TotalFiles    int    `json:"totalFiles"`
	ReviewedFiles int    `json:"reviewedFiles"`
	ExcludedFiles int    `json:"excludedFiles"`
	Review        string `json:"review"`
}

// CommentBody renders the comment posted to the pull request: a fixed
// summary header followed by the model's review text.
func (r *Result) CommentBody() string {
	var b strings.Builder
	b.WriteString("## Gemini Code Review\n\n")
	fmt.Fprintf(&b, "Files reviewed: %d/%d\n", r.ReviewedFiles, r.TotalFiles)
	fmt.Fprintf(&b, "Files excluded: %d\n", r.ExcludedFiles)
	b.WriteString("\n")
	b.WriteString(r.Review)
	return b.String()
}
