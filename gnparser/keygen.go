// Package gnparser derives record keys from botanical names using the
// Global Names scientific name parser.
package gnparser

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/gnames/gnparser"
	"github.com/raingarden/plantfill"
)

// cultivarRe matches a quoted cultivar epithet such as 'Magnus'.
var cultivarRe = regexp.MustCompile(`['‘’"“”]\s*([^'‘’"“”]+?)\s*['‘’"“”]`)

// fallbackKey is the base for names without a single letter to use.
const fallbackKey = "X"

var _ plantfill.KeyGenerator = (*KeyGenerator)(nil)

// KeyGenerator builds keys from the first letters of genus and species, plus
// the first letter of a quoted cultivar. A taken base gets the smallest free
// numeric suffix: AR, AR1, AR2.
//
// The used-key set lives for one run. KeyGenerator is safe for concurrent use.
type KeyGenerator struct {
	mu   sync.Mutex
	prs  gnparser.GNparser
	used map[string]bool
}

// NewKeyGenerator creates a KeyGenerator with an empty used-key set.
func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{
		prs:  gnparser.New(gnparser.NewConfig()),
		used: make(map[string]bool),
	}
}

// Generate returns an unused key for botanicalName and marks it used.
func (g *KeyGenerator) Generate(botanicalName string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	base := g.base(botanicalName)
	key := base
	for i := 1; g.used[key]; i++ {
		key = base + strconv.Itoa(i)
	}
	g.used[key] = true
	return key
}

// Reserve marks key as used. Keys are compared case-insensitively.
func (g *KeyGenerator) Reserve(key string) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if key == "" {
		return
	}
	g.mu.Lock()
	g.used[key] = true
	g.mu.Unlock()
}

// base returns the collision-free candidate for a name. Callers hold mu; the
// parser is not safe for concurrent use.
func (g *KeyGenerator) base(name string) string {
	var b strings.Builder
	words := g.words(name)
	for _, w := range words[:min(2, len(words))] {
		b.WriteString(initial(w))
	}
	if m := cultivarRe.FindStringSubmatch(name); m != nil {
		b.WriteString(initial(m[1]))
	}
	if b.Len() == 0 {
		return fallbackKey
	}
	return b.String()
}

// words returns the genus, species and infraspecific words of name, taken
// from the parser's simple canonical form. Names the parser rejects fall back
// to their whitespace-separated words outside any quoted cultivar.
func (g *KeyGenerator) words(name string) []string {
	var fields []string
	if p := g.prs.ParseName(name); p.Parsed && p.Canonical != nil && p.Canonical.Simple != "" {
		fields = strings.Fields(p.Canonical.Simple)
	} else {
		fields = strings.Fields(cultivarRe.ReplaceAllString(name, " "))
	}

	words := fields[:0]
	for _, f := range fields {
		if r, _ := utf8.DecodeRuneInString(f); unicode.IsLetter(r) {
			words = append(words, f)
		}
	}
	return words
}

// initial returns the upper-cased first letter of s, or "" if s does not
// start with a letter.
func initial(s string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(s))
	if !unicode.IsLetter(r) {
		return ""
	}
	return string(unicode.ToUpper(r))
}
