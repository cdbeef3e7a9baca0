// Package normalize turns raw scraped text into canonical field values.
//
// Every function is pure, never panics on malformed input and is idempotent:
// applying it to its own output returns that output unchanged. An empty
// result means the input carried nothing usable.
package normalize

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	feetRe     = regexp.MustCompile(`(?i)\b(?:feet|foot|ft)\b\.?|['’]`)
	inchRe     = regexp.MustCompile(`(?i)(\d)\s*(?:inches|inch|in(?:\.|$|([,;)\-–]))|["”])`)
	numberRe   = regexp.MustCompile(`\d+\s+\d+/\d+|\d+/\d+|\d*\.\d+|\d+`)
	wordRe     = regexp.MustCompile(`[A-Za-z]+`)
	listSepRe  = regexp.MustCompile(`\s*[,;]\s*`)
	noteSepRe  = regexp.MustCompile(`\s*(?:;|\n)\s*`)
	connectRe  = regexp.MustCompile(`(?i)\s*(?:[,;/&]|\band\b|\bor\b|\bto\b)\s*`)
	listTrimRe = regexp.MustCompile(`^[\s.:\-–•*]+|[\s.:\-–•*]+$`)
)

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var monthAbbrs = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Text collapses runs of whitespace and trims the result.
func Text(text string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// Range normalizes a size such as "1-3 ft" into "1 - 3" (feet).
// Inch measurements are converted to feet. Text without numbers is returned
// trimmed.
func Range(text string) string {
	s := Text(text)
	if s == "" {
		return ""
	}

	inches := inchRe.MatchString(s) && !feetRe.MatchString(s)
	stripped := inchRe.ReplaceAllString(feetRe.ReplaceAllString(s, " "), "${1} ${2}")

	nums := numberRe.FindAllString(stripped, -1)
	if len(nums) == 0 {
		return s
	}
	if len(nums) > 2 {
		nums = nums[:2]
	}

	var parts []string
	for _, n := range nums {
		v, err := parseNumber(n)
		if err != nil {
			continue
		}
		if inches {
			v /= 12
		}
		p := formatNumber(v)
		if len(parts) == 1 && parts[0] == p {
			continue
		}
		parts = append(parts, p)
	}
	if len(parts) == 0 {
		return s
	}
	return strings.Join(parts, " - ")
}

// parseNumber reads a decimal, a fraction such as "1/2" or a mixed number
// such as "1 1/2".
func parseNumber(n string) (float64, error) {
	whole, frac, ok := strings.Cut(n, "/")
	if !ok {
		return strconv.ParseFloat(n, 64)
	}
	var base float64
	if i := strings.LastIndexAny(whole, " \t"); i >= 0 {
		w, err := strconv.ParseFloat(whole[:i], 64)
		if err != nil {
			return 0, err
		}
		base, whole = w, strings.TrimSpace(whole[i+1:])
	}
	num, err := strconv.ParseFloat(whole, 64)
	if err != nil {
		return 0, err
	}
	den, err := strconv.ParseFloat(frac, 64)
	if err != nil {
		return 0, err
	}
	if den == 0 {
		return 0, strconv.ErrRange
	}
	return base + num/den, nil
}

// formatNumber drops trailing zeros: 2.0 -> "2", 1.50 -> "1.5".
func formatNumber(v float64) string {
	v = math.Round(v*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// MonthRange normalizes bloom periods such as "Apr-May" into canonical month
// abbreviations. Two or more distinct months expand to the contiguous span
// from the earliest to the latest: "Apr, Jun" becomes "Apr, May, Jun".
// Text mentioning no month is returned trimmed.
func MonthRange(text string) string {
	s := Text(text)
	if s == "" {
		return ""
	}

	var months []int
	modalMay := false
	for _, w := range wordRe.FindAllString(s, -1) {
		i := monthIndex(w)
		if i < 0 {
			continue
		}
		// Lower-case "may" is usually the verb.
		if w == "may" {
			modalMay = true
			continue
		}
		months = append(months, i)
	}
	if modalMay && len(months) > 0 {
		months = append(months, 4)
	}
	if len(months) == 0 {
		return s
	}
	lo, hi := slices.Min(months), slices.Max(months)
	return strings.Join(monthAbbrs[lo:hi+1], ", ")
}

// monthIndex matches words of three or more letters that prefix a month name,
// so "Sept", "June" and "Jul" all count.
func monthIndex(word string) int {
	w := strings.ToLower(word)
	if len(w) < 3 {
		return -1
	}
	for i, m := range monthNames {
		if strings.HasPrefix(m, w) {
			return i
		}
	}
	return -1
}

// DefaultPhrases holds whole-phrase overrides for condition lists, keyed by
// lower-cased phrase.
var DefaultPhrases = map[string]string{
	"full sun to part shade": "Full Sun, Part Shade",
}

// Conditions normalizes condition vocabularies such as sun and water needs.
// Phrases is consulted before token-wise splitting; keys must be lower case.
type Conditions struct {
	Phrases map[string]string
}

// NewConditions returns a Conditions holding DefaultPhrases plus extra.
func NewConditions(extra map[string]string) Conditions {
	phrases := make(map[string]string, len(DefaultPhrases)+len(extra))
	for k, v := range DefaultPhrases {
		phrases[k] = v
	}
	for k, v := range extra {
		phrases[strings.ToLower(Text(k))] = v
	}
	return Conditions{Phrases: phrases}
}

// Normalize splits text on connector words, title-cases each condition and
// drops duplicates while keeping first-seen order.
func (c Conditions) Normalize(text string) string {
	s := Text(text)
	if s == "" {
		return ""
	}
	if canon, ok := c.Phrases[strings.ToLower(s)]; ok {
		s = canon
	}

	var tokens []string
	for _, seg := range listSepRe.Split(s, -1) {
		if canon, ok := c.Phrases[strings.ToLower(seg)]; ok {
			seg = canon
		}
		tokens = append(tokens, connectRe.Split(seg, -1)...)
	}
	return joinUnique(tokens, titleCase)
}

// ConditionList normalizes text with the default phrase table:
// "full sun to part shade" becomes "Full Sun, Part Shade".
func ConditionList(text string) string {
	return NewConditions(nil).Normalize(text)
}

// ColorList normalizes color lists: "white/pink" becomes "White, Pink".
func ColorList(text string) string {
	s := Text(text)
	if s == "" {
		return ""
	}
	return joinUnique(connectRe.Split(s, -1), titleCase)
}

// List normalizes a comma or semicolon separated list, dropping duplicates
// case-insensitively and keeping first-seen order and spelling.
func List(text string) string {
	s := Text(text)
	if s == "" {
		return ""
	}
	return joinUnique(listSepRe.Split(s, -1), nil)
}

// Notes normalizes free-text notes made of sentences separated by semicolons
// or line breaks, dropping repeated sentences.
func Notes(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	parts := noteSepRe.Split(s, -1)
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		p = Text(p)
		key := strings.ToLower(strings.TrimRight(p, "."))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return strings.Join(out, "; ")
}

func titleCase(s string) string {
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Title(language.English).String(s)
}

// joinUnique trims list decoration from each token, applies transform when
// given and joins the distinct tokens with ", ".
func joinUnique(tokens []string, transform func(string) string) string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		t = Text(listTrimRe.ReplaceAllString(t, ""))
		if t == "" {
			continue
		}
		if transform != nil {
			t = transform(t)
		}
		key := strings.ToLower(t)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, t)
	}
	return strings.Join(out, ", ")
}
