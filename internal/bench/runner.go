package bench

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

type Config struct {
	// CaseTime is how long each contender is measured on a single sample.
	CaseTime time.Duration
	// OverallTime is how long each contender is measured on the whole sample table.
	OverallTime time.Duration
	// Cases restricts the run to the named samples. Empty means all.
	Cases []string
}

func DefaultConfig() Config {
	return Config{
		CaseTime:    time.Second,
		OverallTime: 2 * time.Second,
	}
}

type CaseReport struct {
	Sample  string   `json:"sample"`
	Value   string   `json:"value"`
	Results []Result `json:"results"`
}

type Report struct {
	RunID   uuid.UUID         `json:"runId"`
	Span    timespan.TimeSpan `json:"-"`
	Cases   []CaseReport      `json:"cases"`
	Overall []Result          `json:"overall"`
}

type Runner struct {
	cfg        Config
	logger     *zap.Logger
	printer    Printer
	samples    []Sample
	contenders []Contender
}

func NewRunner(cfg Config, logger *zap.Logger, printer Printer) *Runner {
	return &Runner{
		cfg:        cfg,
		logger:     logger,
		printer:    printer,
		samples:    Samples(),
		contenders: Contenders(),
	}
}

// Run measures every contender on every selected sample, then on the whole
// selection at once. It stops early with ctx's error when ctx is cancelled.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	samples, err := r.selectSamples()
	if err != nil {
		return nil, err
	}

	report := &Report{RunID: uuid.New()}
	start := time.Now()
	logger := r.logger.With(zap.String("run_id", report.RunID.String()))
	logger.Info("benchmark started",
		zap.Int("samples", len(samples)),
		zap.Int("contenders", len(r.contenders)),
		zap.Duration("case_time", r.cfg.CaseTime),
		zap.Duration("overall_time", r.cfg.OverallTime),
	)
	r.printer.PrintStart(report)

	var sink bool
	for _, s := range samples {
		var ranking Ranking
		for _, c := range r.contenders {
			value, fn := s.Value, c.Fn
			stats, err := Measure(ctx, func() { sink = fn(value) }, r.cfg.CaseTime)
			if err != nil {
				return nil, fmt.Errorf("measure %q on %q: %w", c.Name, s.Name, err)
			}
			ranking.Insert(resultOf(c.Name, stats))
			logger.Debug("case measured",
				zap.String("sample", s.Name),
				zap.String("contender", c.Name),
				zap.Float64("ops", stats.Ops),
				zap.Float64("rme", stats.RME),
			)
		}

		cr := CaseReport{
			Sample:  s.Name,
			Value:   describe(s.Value),
			Results: ranking.Results(),
		}
		report.Cases = append(report.Cases, cr)
		r.printer.PrintCase(cr)
	}

	var overall Ranking
	for _, c := range r.contenders {
		fn := c.Fn
		stats, err := Measure(ctx, func() {
			for _, s := range samples {
				sink = fn(s.Value)
			}
		}, r.cfg.OverallTime)
		if err != nil {
			return nil, fmt.Errorf("measure %q on all samples: %w", c.Name, err)
		}
		overall.Insert(resultOf(c.Name, stats))
	}
	_ = sink

	report.Overall = overall.Results()
	report.Span = timespan.BetweenTimes(start, time.Now())
	r.printer.PrintOverall(report)

	logger.Info("benchmark finished", zap.Duration("took", report.Span.Duration()))
	return report, nil
}

func (r *Runner) selectSamples() ([]Sample, error) {
	if len(r.cfg.Cases) == 0 {
		return r.samples, nil
	}

	var out []Sample
	for _, s := range r.samples {
		if slices.Contains(r.cfg.Cases, s.Name) {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sample matches %q", r.cfg.Cases)
	}
	return out, nil
}

func resultOf(name string, s Stats) Result {
	return Result{Contender: name, Ops: s.Ops, RME: s.RME, Calls: s.Calls}
}
