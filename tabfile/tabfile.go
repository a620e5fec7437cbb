/*
Package tabfile reads and writes symbol tables in a plain-text format.

Each line holds one entry, a key and its replacement separated by
whitespace:

	% IPA → Devanagari, tuned for names
	aɪ   ऐ
	dʒ   ज्
	ˈ

A missing replacement stands for the empty string, i.e. the key is deleted
from the output. Lines starting with '%' or '#' and blank lines are ignored.
Keys and values may not contain whitespace.
*/
package tabfile

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/translit"
)

// tracer writes to trace with key 'translit.tabfile'
func tracer() tracing.Trace {
	return tracing.Select("translit.tabfile")
}

// Reader streams table entries from a tabfile source.
// It implements translit.EntryReader.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a Reader on top of reader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// LoadTable parses tabfile data and returns a frozen table.
func LoadTable(name string, reader io.Reader, opts ...translit.Option) (*translit.Table, error) {
	return translit.LoadTable(name, NewReader(reader), opts...)
}

// Next returns the next entry as (key, value).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			tracer().Debugf("line %d: key %q maps to empty string", r.line, fields[0])
			return fields[0], "", nil
		case 2:
			return fields[0], fields[1], nil
		default:
			return "", "", fmt.Errorf("line %d: expected key and value, got %d fields", r.line, len(fields))
		}
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}

// Line returns the number of the line read last.
func (r *Reader) Line() int {
	return r.line
}

// Write writes entries to w in tabfile format, sorted by key.
func Write(w io.Writer, comment string, entries map[string]string) error {
	bw := bufio.NewWriter(w)
	if comment != "" {
		for _, c := range strings.Split(comment, "\n") {
			if _, err := fmt.Fprintf(bw, "%% %s\n", c); err != nil {
				return err
			}
		}
	}
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var err error
		if v := entries[k]; v == "" {
			_, err = fmt.Fprintln(bw, k)
		} else {
			_, err = fmt.Fprintf(bw, "%s\t%s\n", k, v)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
