package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/on-the-ground/isnumber/finite"
)

// Printer renders the progress of a benchmark run.
type Printer interface {
	PrintStart(r *Report)
	PrintCase(c CaseReport)
	PrintOverall(r *Report)
}

// ColorPrinter writes human readable, colored output.
type ColorPrinter struct {
	w io.Writer
}

func NewColorPrinter(w io.Writer) *ColorPrinter {
	return &ColorPrinter{w: w}
}

func (p *ColorPrinter) PrintStart(r *Report) {
	fmt.Fprint(p.w, color.LightCyan.Sprintf("Running benchmarks (run %s)...\n\n", r.RunID))
}

func (p *ColorPrinter) PrintCase(c CaseReport) {
	fmt.Fprint(p.w, color.Cyan.Sprintf("Test case: %s\n", c.Sample))
	fmt.Fprintf(p.w, "Value: %s\n", c.Value)
	fmt.Fprintln(p.w, "Results:")
	p.printResults(c.Results)
	fmt.Fprintln(p.w)
}

func (p *ColorPrinter) PrintOverall(r *Report) {
	fmt.Fprint(p.w, color.LightCyan.Sprintf("Overall Results (mixed data, %s):\n", r.Span.Duration().Round(time.Millisecond)))
	p.printResults(r.Overall)
}

func (p *ColorPrinter) printResults(results []Result) {
	for i, res := range results {
		line := fmt.Sprintf("  %s: %.0f/s (±%.2f%%)\n", res.Contender, res.Ops, res.RME)
		if i == 0 {
			fmt.Fprint(p.w, color.Green.Sprint(line))
			continue
		}
		fmt.Fprint(p.w, line)
	}
}

type jsonEventType string

const (
	startEvent   jsonEventType = "start"
	caseEvent    jsonEventType = "case"
	overallEvent jsonEventType = "overall"
)

// JSONData is one line of JSONPrinter output.
// Fields that do not apply to an event are omitted.
type JSONData struct {
	Type      jsonEventType `json:"type"`
	RunID     string        `json:"runId,omitempty"`
	Sample    string        `json:"sample,omitempty"`
	Value     string        `json:"value,omitempty"`
	Results   []Result      `json:"results,omitempty"`
	StartTime string        `json:"startTime,omitempty"`
	EndTime   string        `json:"endTime,omitempty"`
	Duration  string        `json:"duration,omitempty"`
}

// JSONPrinter writes one JSON object per event.
type JSONPrinter struct {
	encoder *json.Encoder
}

func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{encoder: json.NewEncoder(w)}
}

func (p *JSONPrinter) PrintStart(r *Report) {
	p.encoder.Encode(JSONData{Type: startEvent, RunID: r.RunID.String()})
}

func (p *JSONPrinter) PrintCase(c CaseReport) {
	p.encoder.Encode(JSONData{
		Type:    caseEvent,
		Sample:  c.Sample,
		Value:   c.Value,
		Results: c.Results,
	})
}

func (p *JSONPrinter) PrintOverall(r *Report) {
	p.encoder.Encode(JSONData{
		Type:      overallEvent,
		RunID:     r.RunID.String(),
		Results:   r.Overall,
		StartTime: r.Span.Start().Format(time.RFC3339Nano),
		EndTime:   r.Span.End().Format(time.RFC3339Nano),
		Duration:  r.Span.Duration().String(),
	})
}

// describe renders a sample value the way the sample table names it.
func describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "undefined"
	case string:
		return strconv.Quote(x)
	case finite.Number:
		return fmt.Sprintf("Number(%v)", x.Float64())
	}
	if finite.KindOf(v) == finite.KindNull {
		return "null"
	}
	return fmt.Sprint(v)
}
