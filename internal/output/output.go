package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/codeflock/gemreview/internal/review"
)

// Text renders the result as it would be posted to the pull request,
// prefixed with a line identifying the PR.
func Text(w io.Writer, res *review.Result) error {
	if _, err := fmt.Fprintf(w, "PR %s/%s#%d\n\n", res.Owner, res.Repo, res.Number); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, res.CommentBody())
	return err
}

// JSON renders the structured result, file counts included.
func JSON(w io.Writer, res *review.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

// WriteResult renders the result in the given format to outPath, or to
// stdout when outPath is empty.
func WriteResult(res *review.Result, format, outPath string) error {
	var render func(io.Writer, *review.Result) error
	switch format {
	case "text":
		render = Text
	case "json":
		render = JSON
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return render(w, res)
}
