// Package textnorm cleans raw OCR output into stable line-oriented text.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reHorizWS    = regexp.MustCompile(`[ \t]+`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)
	reHyphenEOL  = regexp.MustCompile(`-\n`)
)

// Normalize collapses noisy whitespace and undoes OCR word-wrap splits.
// Output invariants: no carriage returns, no runs of 3+ blank lines, no
// leading/trailing whitespace. Total and idempotent; empty in, empty out.
func Normalize(s string) string {
	if s == "" {
		return s
	}
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reHorizWS.ReplaceAllString(s, " ")
	// trim trailing spaces so hyphen joins see the hyphen at end of line
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.Join(lines, "\n")
	s = reHyphenEOL.ReplaceAllString(s, "")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
