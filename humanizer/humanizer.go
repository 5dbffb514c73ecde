// Package humanizer is the rule-based rewrite engine behind the
// "Humanize Text" button. It is deliberately dumb: a fixed ordered
// substitution table, a naive sentence splitter, and four
// progressive-passive fixups. Same input, same output, every time.
package humanizer

import (
	"regexp"
	"strings"
)

type replacement struct {
	from string
	to   string
}

// substitutions is applied top to bottom, each entry globally, before
// the next entry runs. Order is part of the contract: multiword phrases
// sit below the single words that could never collide with them, and
// overlapping phrases must keep their relative position so output stays
// stable.
var substitutions = []replacement{
	{"utilize", "use"},
	{"implementation", "use"},
	{"functionality", "features"},
	{"additionally", "also"},
	{"nevertheless", "however"},
	{"subsequently", "then"},
	{"regarding", "about"},
	{"demonstrate", "show"},
	{"considerable", "significant"},
	{"sufficient", "enough"},
	{"prior to", "before"},
	{"due to the fact that", "because"},
	{"in the event that", "if"},
	{"in order to", "to"},
}

// passiveMarkers collapses progressive-passive constructions. Literal,
// case-sensitive matching: "The CD 'Is Being' by X" gets mangled and
// that is accepted behavior.
var passiveMarkers = []replacement{
	{"is being", "is"},
	{"was being", "was"},
	{"are being", "are"},
	{"were being", "were"},
}

// sentenceBoundary matches a period, a single space, then an uppercase
// letter. It does not understand abbreviations or quoted periods.
var sentenceBoundary = regexp.MustCompile(`\. ([A-Z])`)

// Humanize rewrites text to read simpler and more natural. Pure
// function, no side effects. Callers must not pass empty or
// whitespace-only input; the engine assumes there is text to work on.
func Humanize(text string) string {
	// 1. Swap stiff words and phrases for plain ones
	out := text
	for _, s := range substitutions {
		out = strings.ReplaceAll(out, s.from, s.to)
	}

	// 2. Break run-on paragraphs: one sentence per line
	out = sentenceBoundary.ReplaceAllString(out, ".\n$1")

	// 3. "is being done" reads better as "is done"
	for _, s := range passiveMarkers {
		out = strings.ReplaceAll(out, s.from, s.to)
	}

	return out
}

// DeriveTitle builds the default project title: the first three words
// of the input plus an ellipsis.
func DeriveTitle(text string) string {
	words := strings.Fields(text)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ") + "..."
}
