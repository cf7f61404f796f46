package output

import (
	"encoding/json"
	"fmt"
	"io"
)

// Report is the analysis of one position.
type Report struct {
	Index      int    `json:"index"`
	FEN        string `json:"fen"`
	ToMove     string `json:"toMove,omitempty"`
	Status     string `json:"status,omitempty"`
	LegalMoves int    `json:"legalMoves"`
	Board      string `json:"board,omitempty"` // Rendered as by RenderString
	Error      string `json:"error,omitempty"`
}

// ReportWriter is the interface for writing position reports.
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r Report) error

	// Close writes any pending output.
	Close() error
}

// TextWriter writes one line per report.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a report as a single tab-separated line.
func (tw *TextWriter) WriteReport(r Report) error {
	var err error
	if r.Error != "" {
		_, err = fmt.Fprintf(tw.w, "%d\terror\t%s\t%s\n", r.Index, r.Error, r.FEN)
	} else {
		_, err = fmt.Fprintf(tw.w, "%d\t%s\t%s\t%d\t%s\n", r.Index, r.ToMove, r.Status, r.LegalMoves, r.FEN)
	}
	return err
}

// Close is a no-op; TextWriter writes immediately.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format. It buffers reports and writes
// them as one array on Close, unless created in single mode.
type JSONWriter struct {
	w       io.Writer
	reports []Report
	single  bool // If true, write each report immediately as one JSON line
}

// NewJSONWriter creates a JSON writer that batches reports into an array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, reports: make([]Report, 0)}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(r Report) error {
	if jw.single {
		return json.NewEncoder(jw.w).Encode(r)
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Close writes all buffered reports as a JSON array.
func (jw *JSONWriter) Close() error {
	if jw.single {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(struct {
		Positions []Report `json:"positions"`
	}{jw.reports})
	jw.reports = jw.reports[:0]
	return err
}
