// Package linefilter drops receipt lines that can never describe a purchased
// item: decorations, footer noise, and transactional metadata.
package linefilter

import (
	"regexp"
	"strings"
)

const shortMetaLimit = 40

var (
	reDecoration = regexp.MustCompile(`^[-=*_#~]{3,}$`)
	reFooter     = regexp.MustCompile(`(?i)^(thank|visit|survey|feedback|call|tel|phone|www\.|http)`)
	reTxnMeta    = regexp.MustCompile(`(?i)^(customer|order|ref|approval|auth)`)
)

// A predicate names one exclusion heuristic. Predicates run in order; the
// first hit drops the line.
type predicate struct {
	name string
	drop func(line string) bool
}

var exclusions = []predicate{
	{name: "empty", drop: func(l string) bool { return l == "" }},
	{name: "decoration", drop: reDecoration.MatchString},
	{name: "footer", drop: reFooter.MatchString},
	{name: "txn-metadata", drop: func(l string) bool {
		return len(l) < shortMetaLimit && reTxnMeta.MatchString(l)
	}},
}

// Filter splits normalized text into trimmed lines and removes every line an
// exclusion predicate matches. Order of surviving lines is preserved.
// Idempotent: filtering already-filtered output changes nothing.
func Filter(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		l := strings.TrimSpace(line)
		if excluded(l) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func excluded(line string) bool {
	for _, p := range exclusions {
		if p.drop(line) {
			return true
		}
	}
	return false
}
