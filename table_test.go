package translit

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

type sliceEntryReader struct {
	entries [][2]string
	index   int
	err     error
}

func (r *sliceEntryReader) Next() (string, string, error) {
	if r.index >= len(r.entries) {
		if r.err != nil {
			return "", "", r.err
		}
		return "", "", io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry[0], entry[1], nil
}

var overlapping = map[string]string{
	"a":  "A",
	"aɪ": "AI",
	"aʊ": "AU",
	"k":  "K",
	"kh": "KH",
	"ɔː": "OO",
	"?":  "",
}

func bothBackends(t *testing.T, entries map[string]string) map[string]*Table {
	t.Helper()
	dat, err := NewTable("dat", entries)
	if err != nil {
		t.Fatal(err)
	}
	prefix, err := NewTable("prefix", entries, WithPrefixTrie())
	if err != nil {
		t.Fatal(err)
	}
	return map[string]*Table{"dat": dat, "prefix": prefix}
}

func values(tokens []Token) []string {
	vv := make([]string, len(tokens))
	for i, tok := range tokens {
		vv[i] = tok.Value
	}
	return vv
}

func TestTokenizeLongestMatch(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "aɪ", want: []string{"AI"}},
		{input: "aaɪa", want: []string{"A", "AI", "A"}},
		{input: "kha", want: []string{"KH", "A"}},
		{input: "ɔːk", want: []string{"OO", "K"}},
		{input: "ɔ", want: []string{"ɔ"}}, // prefix of a key, but not a key
		{input: "x7", want: []string{"x", "7"}},
		{input: "a?k", want: []string{"A", "", "K"}},
	}
	for name, table := range bothBackends(t, overlapping) {
		for _, tt := range tests {
			if got := values(table.Tokenize(tt.input)); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("%s: tokenizing %q: got %q, want %q", name, tt.input, got, tt.want)
			}
		}
	}
}

func TestTokenizeCoversInput(t *testing.T) {
	inputs := []string{"", "aɪkhaʊ x", "ɔɔːɔ", "😀aɪ", "kkkh?"}
	for name, table := range bothBackends(t, overlapping) {
		for _, input := range inputs {
			var b strings.Builder
			for _, tok := range table.Tokenize(input) {
				b.WriteString(tok.Source)
			}
			if b.String() != input {
				t.Fatalf("%s: token sources of %q concatenate to %q", name, input, b.String())
			}
		}
	}
}

func TestTokenizeUnknownFlag(t *testing.T) {
	table := MustNewTable("flags", overlapping)
	tokens := table.Tokenize("kx")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if !tokens[0].Known || tokens[1].Known {
		t.Fatalf("expected known/unknown, got %v/%v", tokens[0].Known, tokens[1].Known)
	}
	if table.Tokenize("") != nil {
		t.Fatalf("empty input should yield no tokens")
	}
}

func TestLookup(t *testing.T) {
	for name, table := range bothBackends(t, overlapping) {
		if v, ok := table.Lookup("aʊ"); !ok || v != "AU" {
			t.Fatalf("%s: lookup aʊ: got %q/%v", name, v, ok)
		}
		if _, ok := table.Lookup("kha"); ok {
			t.Fatalf("%s: lookup must not match a proper prefix of the key", name)
		}
		if _, ok := table.Lookup("ɔ"); ok {
			t.Fatalf("%s: ɔ is not a key", name)
		}
		if v, ok := table.Lookup("?"); !ok || v != "" {
			t.Fatalf("%s: empty values must be found, got %q/%v", name, v, ok)
		}
	}
}

func TestLoadTableDuplicatesOverride(t *testing.T) {
	table, err := LoadTable("dups", &sliceEntryReader{
		entries: [][2]string{{"æ", "ऐ"}, {"a", "अ"}, {"æ", "ए"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := table.Lookup("æ"); v != "ए" {
		t.Fatalf("later entry should win, got %q", v)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", table.Len())
	}
}

func TestLoadTableErrors(t *testing.T) {
	if _, err := LoadTable("empty-key", &sliceEntryReader{
		entries: [][2]string{{"a", "अ"}, {"", "x"}},
	}); err == nil {
		t.Fatalf("expected error for empty key")
	}
	if _, err := LoadTable("non-bmp", &sliceEntryReader{
		entries: [][2]string{{"😀", "x"}},
	}); err == nil {
		t.Fatalf("expected error for non-BMP key in DAT backend")
	}
	if _, err := LoadTable("non-bmp", &sliceEntryReader{
		entries: [][2]string{{"😀", "x"}},
	}, WithPrefixTrie()); err != nil {
		t.Fatalf("prefix backend should accept non-BMP keys: %v", err)
	}
	broken := errors.New("broken stream")
	_, err := LoadTable("reader", &sliceEntryReader{
		entries: [][2]string{{"a", "अ"}},
		err:     broken,
	})
	if !errors.Is(err, broken) {
		t.Fatalf("expected wrapped reader error, got %v", err)
	}
}

func TestTableStats(t *testing.T) {
	table := MustNewTable("stats", overlapping)
	stats := table.Stats()
	if stats.Backend != "dat" {
		t.Fatalf("expected dat backend, got %s", stats.Backend)
	}
	if stats.Keys != len(overlapping) {
		t.Fatalf("expected %d keys, got %d", len(overlapping), stats.Keys)
	}
	if stats.UsedSlots <= 0 || stats.TotalSlots <= 0 || stats.MaxStateID <= 0 {
		t.Fatalf("expected positive slot counts, got %+v", stats)
	}
	if fill := stats.FillRatio(); fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
	if table.MaxKeyLen() != 2 {
		t.Fatalf("expected max key length 2, got %d", table.MaxKeyLen())
	}
	prefix := MustNewTable("stats", overlapping, WithPrefixTrie())
	if s := prefix.Stats(); s.Backend != "prefix" || s.Keys != len(overlapping) || s.FillRatio() != 0 {
		t.Fatalf("unexpected prefix stats %+v", s)
	}
}

func TestBuildIteratorBeforeFreeze(t *testing.T) {
	db := newDATBackend()
	if err := db.Insert([]rune("kh"), 0); err != nil {
		t.Fatal(err)
	}
	it := db.Iterator()
	if v, alive := it.Next('k'); !alive || v != -1 {
		t.Fatalf("k is an inner node, got %d/%v", v, alive)
	}
	if v, alive := it.Next('h'); !alive || v != 0 {
		t.Fatalf("kh should terminate value 0, got %d/%v", v, alive)
	}
	db.Freeze()
	if err := db.Insert([]rune("g"), 1); !errors.Is(err, errFrozen) {
		t.Fatalf("insert after freeze should fail, got %v", err)
	}
}
