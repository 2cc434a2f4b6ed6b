package render

import (
	"fmt"
	"strings"

	"github.com/ndhoang91/tubedigest/internal/digest"
)

// Markdown renders a digest result as a markdown document.
func Markdown(title string, res *digest.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "_%d words_\n\n", res.WordCount)

	b.WriteString("## Summary\n\n")
	for _, s := range res.Summary {
		fmt.Fprintf(&b, "%s ", s)
	}
	if len(res.Summary) > 0 {
		b.WriteString("\n\n")
	}

	if len(res.Keywords) > 0 {
		b.WriteString("## Key topics\n\n")
		for _, kw := range res.Keywords {
			fmt.Fprintf(&b, "- **%s**\n", kw)
		}
		b.WriteString("\n")
	}

	if len(res.Takeaways) > 0 {
		b.WriteString("## Takeaways\n\n")
		for i, s := range res.Takeaways {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
	}

	return strings.TrimRight(b.String(), " \n") + "\n"
}
