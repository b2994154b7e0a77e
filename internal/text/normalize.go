package text

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldPool holds NFD → strip combining marks (Mn) → NFC pipelines, so
// "jalapeño" and "jalapeno" fold to the same string. Chained transformers
// are stateful, hence one per borrower.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// Normalize canonicalizes an ingredient phrase for comparison:
//  1. NFD decomposition, then strip combining marks (removes accents)
//  2. Lowercase
//  3. Replace anything that is not a letter or digit with a space
//  4. Collapse runs of whitespace, trim ends
//
// The result contains only lowercase letters, digits, and single spaces.
// Normalize is total and idempotent; the empty string normalizes to "".
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	t := foldPool.Get().(transform.Transformer)
	folded, _, err := transform.String(t, s)
	t.Reset()
	foldPool.Put(t)
	if err != nil {
		folded = s // fallback: fold nothing rather than fail
	}

	folded = strings.ToLower(folded)

	var sb strings.Builder
	sb.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}
