package digest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minSentenceRunes drops fragments at or below this length after trimming.
const minSentenceRunes = 20

var newlineRun = regexp.MustCompile(`\n+`)

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// segment splits the transcript into candidate sentences. A split
// happens wherever a piece ends in '.', '!' or '?' followed by
// whitespace; the trailing unterminated fragment is kept too.
// Abbreviations are not special-cased ("Mr." splits); short fragments
// are dropped, not merged.
func (d *implDigester) segment(text string) []Sentence {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = newlineRun.ReplaceAllString(text, " ")

	var pieces []string
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if isTerminator(r) && (i+1 == len(runes) || unicode.IsSpace(runes[i+1])) {
			pieces = append(pieces, string(runes[start:i+1]))
			start = i + 1
		}
	}
	if start < len(runes) {
		pieces = append(pieces, string(runes[start:]))
	}

	var sentences []Sentence
	for _, piece := range pieces {
		trimmed := strings.TrimSpace(piece)
		if utf8.RuneCountInString(trimmed) <= minSentenceRunes {
			continue
		}
		sentences = append(sentences, Sentence{
			Text:  trimmed,
			Index: len(sentences),
		})
	}

	return sentences
}
