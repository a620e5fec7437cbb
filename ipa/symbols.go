package ipa

import "maps"

// defaultSymbols maps English IPA symbols (eng_to_ipa style) to Devanagari
// approximations. Consonants carry a virama, vowels are independent glyphs;
// the merge pass of ToDevanagari joins them into syllables.
//
// The mapping is tuned for names, not for phonetic accuracy. Use LoadSymbols
// to substitute another tuning.
var defaultSymbols = map[string]string{
	// consonants
	"b": "ब्", "d": "ड्", "f": "फ्", "g": "ग्", "ɡ": "ग्", "h": "ह्",
	"j": "य्", "k": "क्", "l": "ल्", "m": "म्", "n": "न्", "p": "प्",
	"r": "र्", "ɹ": "र्", "s": "स्", "t": "ट्", "v": "व्", "w": "व्",
	"z": "ज्", "ʒ": "श्", "dʒ": "ज्", "tʃ": "च्", "θ": "थ्", "ð": "द्",
	"ʃ": "श्", "ŋ": "ङ्",

	// vowels
	"a": "अ", "ə": "अ", "ʌ": "अ", "3": "अ", "ɜ": "अ",
	"ɑ": "आ", "ɑː": "आ",
	"i": "इ", "ɪ": "इ", "iː": "ई",
	"u": "उ", "ʊ": "उ", "uː": "ऊ",
	"e": "ए", "ɛ": "ए", "æ": "ऐ",
	"o": "ओ", "ɒ": "ओ", "ɔ": "औ", "ɔː": "औ",

	// diphthongs and glides
	"aɪ": "ऐ", "aʊ": "औ", "ɔɪ": "ओइ", "eə": "एअ", "ɪə": "इअ", "ʊə": "उअ",
	"ju": "यु",

	// dropped
	"?": "", "ˈ": "", "ˌ": "",
}

// DefaultSymbols returns a copy of the built-in IPA symbol table.
func DefaultSymbols() map[string]string {
	return maps.Clone(defaultSymbols)
}
