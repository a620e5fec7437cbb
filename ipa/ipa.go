/*
Package ipa approximates English IPA transcriptions in Devanagari script.

Transliteration runs in two passes. The first tokenizes the input by
longest match against a symbol table, mapping consonants to virama-marked
glyphs and vowels to independent vowel glyphs:

	"rama"  =>  र् अ म् अ

The second pass merges a virama-marked consonant with a following vowel
into one syllable, replacing the virama by the vowel's dependent sign (the
neutral अ just drops the virama):

	र् अ म् अ  =>  रम

Symbols not in the table are copied unchanged.
*/
package ipa

import (
	"io"
	"unicode/utf8"

	"github.com/npillmayer/translit"
	"github.com/npillmayer/translit/devanagari"
	"github.com/npillmayer/translit/tabfile"
)

// Transliterator converts IPA text to Devanagari using one symbol table.
// It is safe for concurrent use.
type Transliterator struct {
	symbols *translit.Table
}

var std = New(translit.MustNewTable("ipa-devanagari", defaultSymbols))

// New creates a transliterator for a symbol table. Table values are
// expected to be Devanagari glyphs, with consonants ending in a virama.
func New(symbols *translit.Table) *Transliterator {
	return &Transliterator{symbols: symbols}
}

// Default returns the transliterator for the built-in symbol table.
func Default() *Transliterator {
	return std
}

// LoadSymbols reads a symbol table in tabfile format and returns a
// transliterator for it.
func LoadSymbols(name string, reader io.Reader, opts ...translit.Option) (*Transliterator, error) {
	table, err := tabfile.LoadTable(name, reader, opts...)
	if err != nil {
		return nil, err
	}
	return New(table), nil
}

// Symbols returns the symbol table in use.
func (tr *Transliterator) Symbols() *translit.Table {
	return tr.symbols
}

// ToDevanagari transliterates IPA text with the built-in symbol table.
func ToDevanagari(text string) string {
	return std.ToDevanagari(text)
}

// ToDevanagari transliterates IPA text to Devanagari.
func (tr *Transliterator) ToDevanagari(text string) string {
	if text == "" {
		return ""
	}
	return merge(tr.symbols.Tokenize(text))
}

var viramaLen = utf8.RuneLen(devanagari.Virama)

// merge concatenates token values, folding each virama-marked consonant
// with a directly following independent vowel.
func merge(tokens []translit.Token) string {
	out := make([]byte, 0, 3*len(tokens))
	pending := false // out ends in a virama
	for _, tok := range tokens {
		if pending {
			if matra, ok := devanagari.MatraFor(tok.Value); ok {
				out = append(out[:len(out)-viramaLen], matra...)
				pending = false
				continue
			}
		}
		out = append(out, tok.Value...)
		pending = endsInVirama(tok.Value)
	}
	return string(out)
}

func endsInVirama(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r == devanagari.Virama
}
