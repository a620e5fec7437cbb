// Package pipeline composes the transliteration stages into one record per
// utterance: IPA (or Devanagari) in, Devanagari, IAST and phonemes out.
package pipeline

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/translit/devanagari"
	"github.com/npillmayer/translit/iast"
	"github.com/npillmayer/translit/ipa"
)

// tracer writes to trace with key 'translit.pipeline'
func tracer() tracing.Trace {
	return tracing.Select("translit.pipeline")
}

// Record holds the outputs for one utterance.
type Record struct {
	Source     string // input text, IPA or Devanagari
	Devanagari string
	IAST       string
	Phonemes   string // comma-separated
}

// Fields returns the record as a row of output columns.
func (rec Record) Fields() []string {
	return []string{rec.Source, rec.Devanagari, rec.IAST, rec.Phonemes}
}

// Header names the columns of Fields.
var Header = []string{"source", "devanagari", "iast", "phonemes"}

// Pipeline runs the stages with a fixed IPA transliterator and phoneme
// segmenter. It is safe for concurrent use.
type Pipeline struct {
	ipa       *ipa.Transliterator
	segmenter *iast.Segmenter
}

// New creates a pipeline. Nil arguments select the package defaults.
func New(tr *ipa.Transliterator, seg *iast.Segmenter) *Pipeline {
	if tr == nil {
		tr = ipa.Default()
	}
	if seg == nil {
		seg = iast.Default()
	}
	return &Pipeline{ipa: tr, segmenter: seg}
}

// Default returns a pipeline with the built-in tables.
func Default() *Pipeline {
	return New(nil, nil)
}

// FromIPA converts an IPA transcription.
func (p *Pipeline) FromIPA(text string) Record {
	text = strings.TrimSpace(text)
	rec := p.fromDevanagari(text, p.ipa.ToDevanagari(text))
	tracer().Debugf("ipa %q => %q", text, rec.Devanagari)
	return rec
}

// FromDevanagari converts Devanagari text, skipping the IPA stage.
func (p *Pipeline) FromDevanagari(text string) Record {
	text = strings.TrimSpace(text)
	return p.fromDevanagari(text, text)
}

func (p *Pipeline) fromDevanagari(source, deva string) Record {
	roman := devanagari.ToIAST(deva)
	return Record{
		Source:     source,
		Devanagari: deva,
		IAST:       roman,
		Phonemes:   p.segmenter.Segment(roman),
	}
}

// --- Output ----------------------------------------------------------------

// TSVWriter writes records as tab-separated rows.
type TSVWriter struct {
	w *csv.Writer
}

// NewTSVWriter creates a TSVWriter on top of w.
func NewTSVWriter(w io.Writer) *TSVWriter {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return &TSVWriter{w: cw}
}

// WriteHeader writes the column names.
func (tw *TSVWriter) WriteHeader() error {
	return tw.w.Write(Header)
}

// Write writes one record.
func (tw *TSVWriter) Write(rec Record) error {
	return tw.w.Write(rec.Fields())
}

// Flush writes buffered rows and reports any write error.
func (tw *TSVWriter) Flush() error {
	tw.w.Flush()
	return tw.w.Error()
}
