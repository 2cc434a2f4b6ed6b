package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ndhoang91/tubedigest/internal/digest"
)

const rule = "========================================"

// WriteConsole prints a digest result in the console layout: word
// count, chronological summary, topics, then takeaways.
func WriteConsole(w io.Writer, title string, res *digest.Result) {
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Digest: %s\n", title)
	fmt.Fprintf(w, "Words: %d\n", res.WordCount)
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\nSummary:")
	if len(res.Summary) == 0 {
		fmt.Fprintln(w, "  (no sentences found)")
	}
	for _, s := range res.Summary {
		fmt.Fprintf(w, "  %s\n", s)
	}

	fmt.Fprintln(w, "\nKey topics:")
	if len(res.Keywords) == 0 {
		fmt.Fprintln(w, "  (none)")
	} else {
		fmt.Fprintf(w, "  %s\n", strings.Join(res.Keywords, ", "))
	}

	fmt.Fprintln(w, "\nTakeaways:")
	if len(res.Takeaways) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, s := range res.Takeaways {
		fmt.Fprintf(w, "  %d. %s\n", i+1, s)
	}
}
