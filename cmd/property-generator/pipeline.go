package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"property-generator/internal/analyze"
	"property-generator/internal/diagnostic"
	"property-generator/internal/gen"
	"property-generator/internal/logger"
	"property-generator/internal/plan"
)

// run is the outcome of loading and planning packages.
type run struct {
	plans []*plan.Plan
	diags diagnostic.Diagnostics
}

// planPackages loads the packages matching patterns and plans every selected record.
// Records that fail are reported in the diagnostics; the error is reserved
// for failures that stop the whole run.
func (a *app) planPackages(ctx context.Context, patterns []string) (*run, error) {
	log := logger.FromContext(ctx)

	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	analyzer := analyze.NewAnalyzer(a.cfg.AnalyzeOptions())

	graph, err := analyzer.LoadPackages(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	var records []*analyze.Record
	for _, path := range graph.Order {
		records = append(records, graph.PackageRecords(path)...)
	}

	r := &run{}

	for _, name := range a.cfg.Types {
		if !slices.ContainsFunc(records, func(rec *analyze.Record) bool { return rec.Name() == name }) {
			r.diags.AddWarning("", "type not found in the loaded packages", name, "")
		}
	}

	opts, err := a.cfg.PlanOptions()
	if err != nil {
		return nil, err
	}

	for _, res := range plan.BuildAll(ctx, records, opts) {
		if res.Err != nil {
			r.diags.AddErr(res.Record.Name(), res.Err)

			continue
		}

		for _, s := range res.Plan.Skipped {
			r.diags.AddInfo("", s.Reason, res.Plan.Container, s.Field)
		}

		r.plans = append(r.plans, res.Plan)
	}

	log.Debug("planned records", "records", len(records), "plans", len(r.plans))

	return r, nil
}

// generate renders the plans of r. Records that cannot be rendered are added
// to the diagnostics.
func (a *app) generate(ctx context.Context, r *run) []gen.GeneratedFile {
	files, err := gen.NewGenerator(a.cfg.GeneratorConfig()).Generate(ctx, r.plans)

	for _, e := range unjoin(err) {
		r.diags.AddErr("", e)
	}

	return files
}

// unjoin flattens an errors.Join tree.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}

	var joined interface{ Unwrap() []error }
	if !errors.As(err, &joined) {
		return []error{err}
	}

	var out []error
	for _, e := range joined.Unwrap() {
		out = append(out, unjoin(e)...)
	}

	return out
}

// report prints errors to w and logs warnings and infos. It returns errFailed
// when there are errors.
func report(ctx context.Context, w io.Writer, d *diagnostic.Diagnostics) error {
	log := logger.FromContext(ctx)

	for _, info := range d.Infos {
		log.Info(info.String())
	}

	for _, warn := range d.Warnings {
		log.Warn(warn.String())
	}

	for _, e := range d.Errors {
		fmt.Fprintln(w, e.String())
	}

	if d.HasErrors() {
		return fmt.Errorf("%w: %d error(s)", errFailed, len(d.Errors))
	}

	return nil
}
