// Package extract recovers purchased-item records from filtered receipt
// lines using price-pattern matching.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ecotrace/carboncore/constants"
	"github.com/ecotrace/carboncore/internal/entity"
)

// MaxCandidates caps how many price-bearing lines one document may yield.
// Pathological OCR noise can make hundreds of lines look price-like.
const MaxCandidates = 60

var (
	rePrice    = regexp.MustCompile(`\d+\.\d{2}`)
	reNonItem  = regexp.MustCompile(`(?i)(subtotal|total|tax|gst|pst|hst|change|cash|visa|mastercard|debit|tender|balance|rounding)`)
	reCurrency = regexp.MustCompile(`[$€£]`)

	// OCR confusion repair, applied before price detection: comma decimals
	// unified first (tolerating a confused O before the comma), then lone
	// O/o adjacent to digits inside 2-decimal tokens.
	reCommaDec   = regexp.MustCompile(`([0-9oO]),(\d{2})\b`)
	reOBetween   = regexp.MustCompile(`(\d)[oO](\d)`)
	reOBeforeDot = regexp.MustCompile(`(\d)[oO](\.\d{2})\b`)
	reOLeading   = regexp.MustCompile(`(^|[^0-9A-Za-z])[oO](\.\d{2})\b`)
)

// CandidateLine is a line that looks like it describes a purchased item:
// it carries a price-like token and matches no non-item pattern.
type CandidateLine struct {
	Text  string // repaired line text
	Price string // last price-like token, dot-decimal form
}

// HasPriceToken reports whether the repaired line carries a price-like
// token at all, item-shaped or not.
func HasPriceToken(line string) bool {
	return rePrice.MatchString(RepairNumeric(line))
}

// RepairNumeric fixes common OCR confusions inside numeric tokens so that
// price detection and parsing see well-formed decimals. "1O.99" -> "10.99",
// "12,99" -> "12.99".
func RepairNumeric(line string) string {
	l := reCommaDec.ReplaceAllString(line, "$1.$2")
	l = reOBetween.ReplaceAllString(l, "${1}0${2}")
	l = reOBeforeDot.ReplaceAllString(l, "${1}0${2}")
	l = reOLeading.ReplaceAllString(l, "${1}0${2}")
	return l
}

// Candidates returns, in input order, the lines that pass price detection
// and the non-item exclusion set, capped at MaxCandidates.
func Candidates(lines []string) []CandidateLine {
	var out []CandidateLine
	for _, line := range lines {
		if len(out) == MaxCandidates {
			break
		}
		repaired := RepairNumeric(line)
		tokens := rePrice.FindAllString(repaired, -1)
		if len(tokens) == 0 {
			continue
		}
		if reNonItem.MatchString(repaired) {
			continue
		}
		out = append(out, CandidateLine{Text: repaired, Price: tokens[len(tokens)-1]})
	}
	return out
}

// ParseItems builds LineItems from candidate lines. The price is the parsed
// value of the last price-like token; the name is the line with that token
// and any currency symbol stripped. Lines whose token fails to parse as a
// finite non-negative decimal are dropped, not fatal; the second return is
// the dropped-line count for caller diagnostics. Categories are left at the
// default for the classifier to assign.
func ParseItems(lines []string) ([]entity.LineItem, int) {
	candidates := Candidates(lines)
	items := make([]entity.LineItem, 0, len(candidates))
	dropped := 0
	for _, c := range candidates {
		price, err := strconv.ParseFloat(c.Price, 64)
		if err != nil || price < 0 {
			dropped++
			continue
		}
		items = append(items, entity.LineItem{
			Name:     itemName(c.Text, c.Price),
			Price:    price,
			Category: constants.Default,
		})
	}
	return items, dropped
}

// itemName strips the matched price token and currency symbols, then
// collapses leftover whitespace.
func itemName(line, priceToken string) string {
	name := line
	if idx := strings.LastIndex(name, priceToken); idx >= 0 {
		name = name[:idx] + name[idx+len(priceToken):]
	}
	name = reCurrency.ReplaceAllString(name, "")
	return strings.Join(strings.Fields(name), " ")
}
