/*
Package translit is a small toolkit for table-driven phonetic transliteration.

It provides the longest-match symbol table shared by the concrete
transliterators in its sub-packages:

	ipa         IPA transcriptions of English → Devanagari approximation
	devanagari  Devanagari → IAST romanization
	iast        IAST → comma-separated phoneme sequence
	pipeline    the three stages composed into one output record

A Table is loaded once from key/value entries and then frozen into a
double-array trie (DAT). Keys of a table may be prefixes of each other
(e.g. IPA "a" and "aɪ"); matching always prefers the longest key. Input
that no key matches is passed through one rune at a time, so tokenizing
never fails and never drops characters.

Tables are read-only after construction and may be used from multiple
goroutines without synchronization.

Further Reading

	https://en.wikipedia.org/wiki/International_Alphabet_of_Sanskrit_Transliteration
	https://www.unicode.org/charts/PDF/U0900.pdf   (Devanagari code chart)
	https://linux.thai.net/~thep/datrie/datrie.html (double-array tries)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'translit'
func tracer() tracing.Trace {
	return tracing.Select("translit")
}
