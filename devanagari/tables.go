package devanagari

// Virama cancels the inherent vowel of the consonant it follows.
const Virama = '्'

// Nukta modifies the consonant it follows (क + ़ = क़).
const Nukta = '़'

// consonants maps consonant glyphs to their IAST base, without the
// inherent vowel.
var consonants = map[rune]string{
	'क': "k", 'ख': "kh", 'ग': "g", 'घ': "gh", 'ङ': "ṅ",
	'च': "c", 'छ': "ch", 'ज': "j", 'झ': "jh", 'ञ': "ñ",
	'ट': "ṭ", 'ठ': "ṭh", 'ड': "ḍ", 'ढ': "ḍh", 'ण': "ṇ",
	'त': "t", 'थ': "th", 'द': "d", 'ध': "dh", 'न': "n",
	'प': "p", 'फ': "ph", 'ब': "b", 'भ': "bh", 'म': "m",
	'य': "y", 'र': "r", 'ल': "l", 'ळ': "ḷ", 'व': "v",
	'श': "ś", 'ष': "ṣ", 'स': "s", 'ह': "h",
}

// nuktaForms maps base consonants to the transliteration of their nukta
// variant.
var nuktaForms = map[rune]string{
	'क': "q", 'ख': "k͟h", 'ग': "ġ", 'ज': "z",
	'ड': "ṛ", 'ढ': "ṛh", 'फ': "f", 'य': "ẏ",
}

// precomposedNukta maps the precomposed nukta glyphs U+0958..U+095F to
// their base consonant.
var precomposedNukta = map[rune]rune{
	'\u0958': 'क', '\u0959': 'ख', '\u095A': 'ग', '\u095B': 'ज',
	'\u095C': 'ड', '\u095D': 'ढ', '\u095E': 'फ', '\u095F': 'य',
}

// matras maps dependent vowel signs to IAST vowels.
var matras = map[rune]string{
	'ा': "ā", 'ि': "i", 'ी': "ī", 'ु': "u", 'ू': "ū",
	'ृ': "ṛ", 'ॄ': "ṝ", 'ॢ': "ḷ", 'ॣ': "ḹ",
	'े': "e", 'ै': "ai", 'ो': "o", 'ौ': "au",
}

// vowels maps independent vowel glyphs to IAST vowels.
var vowels = map[rune]string{
	'अ': "a", 'आ': "ā", 'इ': "i", 'ई': "ī", 'उ': "u", 'ऊ': "ū",
	'ऋ': "ṛ", 'ॠ': "ṝ", 'ऌ': "ḷ", 'ॡ': "ḹ",
	'ए': "e", 'ऐ': "ai", 'ओ': "o", 'औ': "au",
}

// signs maps vowel modifiers, punctuation and digits.
var signs = map[rune]string{
	'ं': "ṃ", 'ः': "ḥ", 'ँ': "m̐", 'ऽ': "'",
	'।': "|", '॥': "||",
	'०': "0", '१': "1", '२': "2", '३': "3", '४': "4",
	'५': "5", '६': "6", '७': "7", '८': "8", '९': "9",
}

// vowelToMatra maps independent vowels to the dependent sign replacing a
// virama when the vowel follows a consonant. The neutral अ maps to the
// empty string: dropping the virama realizes the inherent vowel.
var vowelToMatra = map[string]string{
	"अ": "",
	"आ": "ा", "इ": "ि", "ई": "ी", "उ": "ु", "ऊ": "ू",
	"ऋ": "ृ", "ॠ": "ॄ", "ऌ": "ॢ", "ॡ": "ॣ",
	"ए": "े", "ऐ": "ै", "ओ": "ो", "औ": "ौ",
}

// MatraFor returns the dependent vowel sign for an independent vowel glyph.
func MatraFor(vowel string) (string, bool) {
	m, ok := vowelToMatra[vowel]
	return m, ok
}

// IsConsonant reports whether r is a consonant glyph, including the
// precomposed nukta consonants.
func IsConsonant(r rune) bool {
	if _, ok := consonants[r]; ok {
		return true
	}
	_, ok := precomposedNukta[r]
	return ok
}

// IsMatra reports whether r is a dependent vowel sign.
func IsMatra(r rune) bool {
	_, ok := matras[r]
	return ok
}

// IsVowel reports whether r is an independent vowel glyph.
func IsVowel(r rune) bool {
	_, ok := vowels[r]
	return ok
}
