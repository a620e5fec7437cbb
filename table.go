package translit

import (
	"fmt"
	"io"
	"sort"
)

// EntryReader yields table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type EntryReader interface {
	Next() (key, value string, err error)
}

// Token is one unit of tokenizer output.
//
// Source is the matched input text, Value its replacement. For input no key
// matches, Source and Value both hold the single unmatched rune and Known is
// false.
type Token struct {
	Source string
	Value  string
	Known  bool
}

// Table is a frozen longest-match symbol table.
type Table struct {
	index      symbolIndex
	values     []string
	maxKeyLen  int // in runes
	Identifier string
}

// Option configures table construction.
type Option func(*tableConfig)

type tableConfig struct {
	prefixTrie bool
}

// WithPrefixTrie selects a prefix-tree index instead of the default
// double-array trie.
func WithPrefixTrie() Option {
	return func(c *tableConfig) {
		c.prefixTrie = true
	}
}

// LoadTable compiles a table from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package tabfile to parse concrete formats and feed this API. Entries
// with a key already seen replace the earlier value.
func LoadTable(name string, reader EntryReader, opts ...Option) (*Table, error) {
	var conf tableConfig
	for _, opt := range opts {
		opt(&conf)
	}
	t := &Table{Identifier: fmt.Sprintf("table: %s", name)}
	if conf.prefixTrie {
		t.index = newPrefixBackend()
	} else {
		t.index = newDATBackend()
	}
	line := 0
	for {
		key, value, err := reader.Next()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%s: reading entry %d: %w", name, line, err)
		}
		if key == "" {
			return nil, fmt.Errorf("%s: entry %d has an empty key", name, line)
		}
		runes := []rune(key)
		if err := t.index.Insert(runes, len(t.values)); err != nil {
			return nil, fmt.Errorf("%s: key %q: %w", name, key, err)
		}
		t.values = append(t.values, value)
		t.maxKeyLen = max(t.maxKeyLen, len(runes))
	}
	t.index.Freeze()
	stats := t.index.Stats()
	if stats.Keys < len(t.values) {
		tracer().Debugf("%s: %d entries overridden by later duplicates", t.Identifier, len(t.values)-stats.Keys)
	}
	tracer().Infof("%s stats backend=%s keys=%d used=%d total=%d fill=%.2f maxKeyLen=%d",
		t.Identifier, stats.Backend, stats.Keys, stats.UsedSlots, stats.TotalSlots,
		stats.FillRatio(), t.maxKeyLen)
	return t, nil
}

// NewTable compiles a table from an in-memory map.
func NewTable(name string, entries map[string]string, opts ...Option) (*Table, error) {
	return LoadTable(name, newMapReader(entries), opts...)
}

// MustNewTable is like NewTable but panics on error. It is meant for
// package-level tables built from literals.
func MustNewTable(name string, entries map[string]string, opts ...Option) *Table {
	t, err := NewTable(name, entries, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	if t == nil || t.index == nil {
		return 0
	}
	return t.index.Stats().Keys
}

// MaxKeyLen returns the length of the longest key in runes.
func (t *Table) MaxKeyLen() int {
	if t == nil {
		return 0
	}
	return t.maxKeyLen
}

// Stats reports metrics of the underlying key index.
func (t *Table) Stats() IndexStats {
	if t == nil || t.index == nil {
		return IndexStats{}
	}
	return t.index.Stats()
}

// Match finds the longest key that is a prefix of runes[at:].
// length is the key length in runes; ok is false if no key matches.
func (t *Table) Match(runes []rune, at int) (value string, length int, ok bool) {
	if t == nil || t.index == nil || at < 0 || at >= len(runes) {
		return "", 0, false
	}
	best := -1
	it := t.index.Iterator()
	for j := at; j < len(runes) && j-at < t.maxKeyLen; j++ {
		v, alive := it.Next(runes[j])
		if !alive {
			break
		}
		if v >= 0 {
			best, length = v, j-at+1
		}
	}
	if best < 0 {
		return "", 0, false
	}
	return t.values[best], length, true
}

// Lookup returns the value stored for exactly key.
func (t *Table) Lookup(key string) (string, bool) {
	runes := []rune(key)
	v, n, ok := t.Match(runes, 0)
	if !ok || n != len(runes) {
		return "", false
	}
	return v, true
}

// Tokenize splits text into tokens, greedily preferring the longest key at
// each position. Runes no key starts with become single unknown tokens.
//
// Example, with keys "a", "aɪ" and "k":
//
//	"kaɪx" => [ "k", "aɪ", "x"(unknown) ].
func (t *Table) Tokenize(text string) []Token {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	tokens := make([]Token, 0, len(runes))
	for i := 0; i < len(runes); {
		if v, n, ok := t.Match(runes, i); ok {
			tokens = append(tokens, Token{Source: string(runes[i : i+n]), Value: v, Known: true})
			i += n
			continue
		}
		s := string(runes[i])
		tokens = append(tokens, Token{Source: s, Value: s})
		i++
	}
	return tokens
}

// --- Map reader ------------------------------------------------------------

// mapReader yields map entries ordered by key, so value indices do not
// depend on map iteration order.
type mapReader struct {
	keys    []string
	entries map[string]string
	index   int
}

func newMapReader(entries map[string]string) *mapReader {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &mapReader{keys: keys, entries: entries}
}

func (r *mapReader) Next() (string, string, error) {
	if r.index >= len(r.keys) {
		return "", "", io.EOF
	}
	k := r.keys[r.index]
	r.index++
	return k, r.entries[k], nil
}
