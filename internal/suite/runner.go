// Package suite runs YAML conversion suites through the converter and the
// evaluator and collects the outcome in a report.
package suite

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/DjordjeVuckovic/rpn/internal/domain"
	"github.com/DjordjeVuckovic/rpn/internal/evaluator"
	"github.com/DjordjeVuckovic/rpn/internal/postfix"
	"github.com/DjordjeVuckovic/rpn/internal/report"
	"github.com/DjordjeVuckovic/rpn/internal/storage"
)

const valueTolerance = 1e-9

type RunnerOption func(*Runner)

// WithPrecedence runs every case against a custom precedence table.
func WithPrecedence(table postfix.PrecedenceTable) RunnerOption {
	return func(r *Runner) {
		r.convOpts = append(r.convOpts, postfix.WithPrecedence(table))
	}
}

// WithRecorder stores every conversion attempt of a run in bulk once the run finishes.
func WithRecorder(storer storage.Storer) RunnerOption {
	return func(r *Runner) {
		r.recorder = storer
	}
}

type Runner struct {
	convOpts []postfix.Option
	recorder storage.Storer

	multi  *postfix.Converter
	single *postfix.Converter
}

func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	r.multi = postfix.NewConverter(r.convOpts...)
	r.single = postfix.NewConverter(append(r.convOpts, postfix.WithSingleRuneOperands())...)
	return r
}

// Run executes the cases in order. It stops with ctx.Err() when the context
// is cancelled between cases; a failing case never aborts the run.
func (r *Runner) Run(ctx context.Context, s *Suite) (*report.Report, error) {
	start := time.Now()
	rep := &report.Report{Suite: s.Name}
	history := make([]domain.Conversion, 0, len(s.Cases))

	for i := range s.Cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		c := &s.Cases[i]
		entry, conv := r.runCase(c)
		rep.Add(entry)
		history = append(history, conv)

		if entry.Status == report.StatusFail {
			slog.Debug("suite case failed", "suite", s.Name, "case", c.ID, "reason", entry.Reason)
		}
	}
	rep.Duration = time.Since(start)

	if r.recorder != nil {
		if err := r.recorder.SaveBulk(ctx, history); err != nil {
			return rep, fmt.Errorf("failed to record suite conversions: %w", err)
		}
	}

	slog.Info("suite finished", "suite", s.Name, "passed", rep.Passed, "failed", rep.Failed, "duration", rep.Duration)
	return rep, nil
}

func (r *Runner) runCase(c *Case) (report.Entry, domain.Conversion) {
	conv := r.multi
	if c.SingleRune {
		conv = r.single
	}

	entry := report.Entry{
		CaseID:   c.ID,
		Infix:    c.Infix,
		Expected: c.expected(),
	}

	caseStart := time.Now()
	p, err := conv.Convert(c.Infix)
	entry.Latency = time.Since(caseStart)

	record := postfix.Record(c.Infix, p, err)

	if err != nil {
		kind := postfix.KindOf(err)
		entry.ErrorKind = string(kind)
		switch {
		case c.Error == "":
			return fail(entry, fmt.Sprintf("unexpected error: %v", err)), record
		case c.Error != kind:
			return fail(entry, fmt.Sprintf("expected error %s, got %s", c.Error, kind)), record
		}
		return pass(entry), record
	}

	entry.Got = p.String()
	if c.Error != "" {
		return fail(entry, fmt.Sprintf("expected error %s, got postfix %q", c.Error, entry.Got)), record
	}
	if c.Postfix != nil && *c.Postfix != entry.Got {
		return fail(entry, fmt.Sprintf("expected postfix %q, got %q", *c.Postfix, entry.Got)), record
	}

	if c.Value != nil {
		v, err := evaluator.Evaluate(p, c.Vars)
		if err != nil {
			return fail(entry, fmt.Sprintf("evaluation failed: %v", err)), record
		}
		entry.Value = &v
		if math.Abs(v-*c.Value) > valueTolerance {
			return fail(entry, fmt.Sprintf("expected value %g, got %g", *c.Value, v)), record
		}
	}

	return pass(entry), record
}

func pass(e report.Entry) report.Entry {
	e.Status = report.StatusPass
	return e
}

func fail(e report.Entry, reason string) report.Entry {
	e.Status = report.StatusFail
	e.Reason = reason
	return e
}
