/*
Package devanagari romanizes Devanagari text to IAST.

It also holds the Devanagari tables other transliterators build on: the
virama and the mapping of independent vowels to dependent signs.

Orthographic rules applied: a consonant carries the inherent vowel "a"
unless a virama suppresses it or a vowel sign replaces it.

	राम  => rāma
	क्ष  => kṣa
	कं   => kaṃ

Input that is not Devanagari is copied unchanged.
*/
package devanagari

import (
	"strings"
)

// ToIAST transliterates Devanagari text to IAST.
func ToIAST(text string) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(runes); {
		r := runes[i]
		if base, width, ok := consonantAt(runes, i); ok {
			i += width
			b.WriteString(base)
			if i < len(runes) {
				if runes[i] == Virama {
					i++
					continue
				}
				if v, ok := matras[runes[i]]; ok {
					b.WriteString(v)
					i++
					continue
				}
			}
			b.WriteByte('a') // inherent vowel
			continue
		}
		if v, ok := vowels[r]; ok {
			b.WriteString(v)
		} else if v, ok := matras[r]; ok { // stray sign without consonant
			b.WriteString(v)
		} else if v, ok := signs[r]; ok {
			b.WriteString(v)
		} else {
			b.WriteRune(r)
		}
		i++
	}
	return b.String()
}

// consonantAt decodes the consonant starting at runes[i], if any, and
// returns its IAST base and the number of runes it occupies.
func consonantAt(runes []rune, i int) (string, int, bool) {
	r := runes[i]
	if base, ok := precomposedNukta[r]; ok {
		return nuktaForms[base], 1, true
	}
	base, ok := consonants[r]
	if !ok {
		return "", 0, false
	}
	if i+1 < len(runes) && runes[i+1] == Nukta {
		if nf, ok := nuktaForms[r]; ok {
			return nf, 2, true
		}
		return base, 2, true // nukta without a common reading is ignored
	}
	return base, 1, true
}
