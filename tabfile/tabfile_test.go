package tabfile

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustLoadFixture(t *testing.T, file string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "testdata", file))
	if err != nil {
		t.Fatalf("cannot read fixture %s: %v", file, err)
	}
	return data
}

func TestReader(t *testing.T) {
	src := strings.NewReader(`% comment
aɪ	ऐ

# another comment
  dʒ   ज्  
ˈ
`)
	r := NewReader(src)
	want := [][2]string{{"aɪ", "ऐ"}, {"dʒ", "ज्"}, {"ˈ", ""}}
	for _, w := range want {
		key, value, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if key != w[0] || value != w[1] {
			t.Fatalf("entry mismatch: got (%q, %q), want (%q, %q)", key, value, w[0], w[1])
		}
	}
	if _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if r.Line() != 6 {
		t.Fatalf("expected 6 lines read, got %d", r.Line())
	}
}

func TestReaderRejectsExtraFields(t *testing.T) {
	r := NewReader(strings.NewReader("k\tक्\n\nk h ख्\n"))
	if _, _, err := r.Next(); err != nil {
		t.Fatalf("first entry is valid: %v", err)
	}
	_, _, err := r.Next()
	if err == nil {
		t.Fatalf("expected error for three fields")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error should name line 3, got %v", err)
	}
}

func TestLoadTableFixture(t *testing.T) {
	data := mustLoadFixture(t, "ipa-names.tab")
	table, err := LoadTable("ipa-names.tab", bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key  string
		want string
	}{
		{key: "æ", want: "ए"},
		{key: "iː", want: "ई"},
		{key: "ɹ", want: "र्"},
		{key: "ˈ", want: ""},
	}
	for _, tt := range tests {
		got, ok := table.Lookup(tt.key)
		if !ok || got != tt.want {
			t.Fatalf("lookup mismatch for %q: got %q/%v, want %q", tt.key, got, ok, tt.want)
		}
	}
	if table.Len() != 15 {
		t.Fatalf("expected 15 entries, got %d", table.Len())
	}
}

func TestWriteReadsBack(t *testing.T) {
	entries := map[string]string{"k": "क्", "aɪ": "ऐ", "?": ""}
	var buf bytes.Buffer
	if err := Write(&buf, "generated\nsecond line", entries); err != nil {
		t.Fatal(err)
	}
	want := "% generated\n% second line\n?\naɪ\tऐ\nk\tक्\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	r := NewReader(&buf)
	got := make(map[string]string)
	for {
		k, v, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		got[k] = v
	}
	if len(got) != len(entries) {
		t.Fatalf("read back %d entries, wrote %d", len(got), len(entries))
	}
	for k, v := range entries {
		if got[k] != v {
			t.Fatalf("entry %q: read back %q, wrote %q", k, got[k], v)
		}
	}
}
