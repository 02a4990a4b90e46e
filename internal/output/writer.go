package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// ReportWriter is an interface for writing move reports in different formats.
type ReportWriter interface {
	// WriteReport writes a single report.
	WriteReport(r *Report) error
	// Flush flushes any buffered data.
	Flush() error
	// Close flushes and releases resources.
	Close() error
}

// TextWriter writes one line per move followed by a summary line.
type TextWriter struct {
	w *bufio.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// WriteReport writes a report as text.
func (tw *TextWriter) WriteReport(r *Report) error {
	for _, m := range r.Moves {
		fmt.Fprintf(tw.w, "%s %v\n", m.Name(r.Geometry), m.Kind)
	}
	fmt.Fprintf(tw.w, "%d legal moves, %s to move%s\n",
		len(r.Moves), strings.ToLower(r.Side.String()), statusSuffix(r.Status))
	return tw.w.Flush()
}

// statusSuffix describes a status for the summary line.
func statusSuffix(s Status) string {
	switch s {
	case Check:
		return ", in check"
	case Checkmate, Stalemate:
		return ", " + s.String()
	}
	return ""
}

// Flush flushes the underlying writer.
func (tw *TextWriter) Flush() error {
	return tw.w.Flush()
}

// Close flushes the text writer.
func (tw *TextWriter) Close() error {
	return tw.Flush()
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*Report
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*Report, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteReport buffers a report for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteReport(r *Report) error {
	if jw.single {
		return jw.encode(ReportToJSON(r))
	}
	jw.reports = append(jw.reports, r)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	out := &JSONOutput{
		Positions: make([]*JSONPosition, 0, len(jw.reports)),
	}
	for _, r := range jw.reports {
		out.Positions = append(out.Positions, ReportToJSON(r))
	}
	err := jw.encode(out)

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
