package render

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/ndhoang91/tubedigest/internal/digest"
)

const (
	fontName = "Times New Roman"
	fontSize = 13

	titleSize   = 16
	headingSize = 14
)

// WriteDocx writes a digest result as a styled docx document.
func WriteDocx(title string, res *digest.Result, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%d words", res.WordCount), false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Summary", true, headingSize)
	for _, s := range res.Summary {
		addStyledRun(doc.AddParagraph(""), s, false, fontSize)
	}

	if len(res.Keywords) > 0 {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), "Key topics", true, headingSize)
		addStyledRun(doc.AddParagraph(""), strings.Join(res.Keywords, ", "), false, fontSize)
	}

	if len(res.Takeaways) > 0 {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), "Takeaways", true, headingSize)
		for i, s := range res.Takeaways {
			addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, s), false, fontSize)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
