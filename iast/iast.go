/*
Package iast segments IAST romanized text into phonemes.

Segmentation matches a closed phoneme alphabet by longest match, so
aspirates and diphthongs stay together:

	"bhairava"  =>  bh,ai,r,a,v,a

Characters outside the alphabet (spaces, punctuation, capitals) become
phonemes of their own. Input is NFC-normalized first, so decomposed
diacritics segment like precomposed ones.
*/
package iast

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/translit"
)

// Delimiter separates phonemes in the output of Segment.
const Delimiter = ","

// alphabet lists the IAST phonemes.
var alphabet = []string{
	// vowels
	"a", "ā", "i", "ī", "u", "ū", "ṛ", "ṝ", "ḷ", "ḹ", "e", "ai", "o", "au",
	// anusvara, candrabindu, visarga
	"ṃ", "m̐", "ḥ",
	// consonants
	"k", "kh", "g", "gh", "ṅ",
	"c", "ch", "j", "jh", "ñ",
	"ṭ", "ṭh", "ḍ", "ḍh", "ṇ",
	"t", "th", "d", "dh", "n",
	"p", "ph", "b", "bh", "m",
	"y", "r", "l", "v",
	"ś", "ṣ", "s", "h",
}

// Segmenter splits text into phonemes of an alphabet.
type Segmenter struct {
	phonemes *translit.Table
}

var std = NewSegmenter(alphabet)

// NewSegmenter creates a segmenter for a custom phoneme alphabet.
// Phonemes are NFC-normalized.
func NewSegmenter(phonemes []string) *Segmenter {
	entries := make(map[string]string, len(phonemes))
	for _, p := range phonemes {
		p = norm.NFC.String(p)
		if p != "" {
			entries[p] = p
		}
	}
	return &Segmenter{
		phonemes: translit.MustNewTable("iast-phonemes", entries),
	}
}

// Default returns the segmenter for the IAST alphabet.
func Default() *Segmenter {
	return std
}

// Alphabet returns the phonemes of the built-in IAST alphabet.
func Alphabet() []string {
	return append([]string(nil), alphabet...)
}

// Phonemes splits IAST text into phonemes.
func Phonemes(text string) []string {
	return std.Phonemes(text)
}

// Segment splits IAST text into phonemes joined by Delimiter.
//
// Example:
//
//	"bhai" => "bh,ai".
func Segment(text string) string {
	return std.Segment(text)
}

// Phonemes splits text into phonemes of the segmenter's alphabet.
func (s *Segmenter) Phonemes(text string) []string {
	if text == "" {
		return nil
	}
	tokens := s.phonemes.Tokenize(norm.NFC.String(text))
	pp := make([]string, len(tokens))
	for i, tok := range tokens {
		pp[i] = tok.Source
	}
	return pp
}

// Segment splits text into phonemes joined by Delimiter.
func (s *Segmenter) Segment(text string) string {
	return strings.Join(s.Phonemes(text), Delimiter)
}
