package encode

import "regexp"

var digitRunRegex = regexp.MustCompile(`[0-9]+`)

// DigitRuns returns every maximal run of ASCII decimal digits in input, in order of appearance. Everything else,
// including non-ASCII digits and multi-byte characters, separates runs and is discarded.
func DigitRuns(input string) []string {
	return digitRunRegex.FindAllString(input, -1)
}
