package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestProcessIPA(t *testing.T) {
	is := is.New(t)
	p, err := newPipeline(options{From: "ipa"})
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(process(p, options{From: "ipa", Header: true}, []string{"rama", "kiː"}, &buf))
	is.Equal(buf.String(), "source\tdevanagari\tiast\tphonemes\n"+
		"rama\tरम\trama\tr,a,m,a\n"+
		"kiː\tकी\tkī\tk,ī\n")
}

func TestProcessDevanagari(t *testing.T) {
	is := is.New(t)
	opts := options{From: "devanagari", Backend: "trie"}
	p, err := newPipeline(opts)
	is.NoErr(err)
	var buf bytes.Buffer
	is.NoErr(process(p, opts, []string{"राम"}, &buf))
	is.Equal(buf.String(), "राम\tराम\trāma\tr,ā,m,a\n")
}

func TestNewPipelineTableFile(t *testing.T) {
	is := is.New(t)
	p, err := newPipeline(options{TableFile: filepath.Join("..", "..", "testdata", "ipa-names.tab")})
	is.NoErr(err)
	is.Equal(p.FromIPA("ˈmæri").Devanagari, "मेरि")

	_, err = newPipeline(options{TableFile: filepath.Join(t.TempDir(), "missing.tab")})
	is.True(err != nil) // missing table file
}

func TestNewPipelineRejectsUnknownOptions(t *testing.T) {
	is := is.New(t)
	_, err := newPipeline(options{Backend: "btree"})
	is.True(err != nil)
	_, err = newPipeline(options{From: "latin"})
	is.True(err != nil)
}

func TestReadLines(t *testing.T) {
	is := is.New(t)
	lines, err := readLines(strings.NewReader("rama\n\n  sita  \r\n"))
	is.NoErr(err)
	is.Equal(lines, []string{"rama", "sita"})
}

func TestTableCommand(t *testing.T) {
	is := is.New(t)
	var buf bytes.Buffer
	tableCmd.SetOut(&buf)
	is.NoErr(tableCmd.RunE(tableCmd, nil))
	out := buf.String()
	is.True(strings.HasPrefix(out, "% IPA → Devanagari"))
	is.True(strings.Contains(out, "aɪ\tऐ\n"))

	// the dump loads back as a table file
	path := filepath.Join(t.TempDir(), "dump.tab")
	is.NoErr(os.WriteFile(path, buf.Bytes(), 0o644))
	p, err := newPipeline(options{TableFile: path})
	is.NoErr(err)
	is.Equal(p.FromIPA("rama").IAST, "rama")
}
