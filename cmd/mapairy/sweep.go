package main

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/numfold/mapairy"
)

// The sweeps mirror the distribution's documented operating ranges:
// the density and distribution on the dense grid [-6, 64] and on
// doubling steps out to 2^64, the quantile on a dense probability
// grid and down to lower-tail probabilities of 2^-1000 and
// complementary upper-tail probabilities of 2^-128.
func runSweeps(logger *zap.Logger, outDir string) error {
	if err := os.MkdirAll(outDir, 0o777); err != nil {
		return err
	}
	sweeps := []struct {
		name string
		run  func(*sweepWriter)
	}{
		{"mapairy_pdf.csv", sweepPDF},
		{"mapairy_pdf_limit.csv", sweepPDFLimit},
		{"mapairy_cdf.csv", sweepCDF},
		{"mapairy_cdf_limit.csv", sweepCDFLimit},
		{"mapairy_quantile.csv", sweepQuantile},
		{"mapairy_quantilelower_limit.csv", sweepQuantileLower},
		{"mapairy_quantileupper_limit.csv", sweepQuantileUpper},
	}
	for _, s := range sweeps {
		if err := writeSweep(logger, filepath.Join(outDir, s.name), s.run); err != nil {
			return errors.Wrapf(err, "sweep %s", s.name)
		}
	}
	return nil
}

// A sweepWriter accumulates CSV rows for one sweep. A row whose
// evaluation fails is logged and dropped; the sweep continues.
type sweepWriter struct {
	logger *zap.Logger
	w      *csv.Writer
	err    error
}

func (s *sweepWriter) header(cols ...string) {
	if s.err == nil {
		s.err = s.w.Write(cols)
	}
}

// row writes one record of inputs and evaluation results. Any eval
// error aborts only this row.
func (s *sweepWriter) row(in float64, outs ...func() (float64, error)) {
	if s.err != nil {
		return
	}
	rec := make([]string, 0, len(outs)+1)
	rec = append(rec, formatFloat(in))
	for _, out := range outs {
		v, err := out()
		if err != nil {
			s.logger.Warn("dropping row", zap.Float64("input", in), zap.Error(err))
			return
		}
		rec = append(rec, formatFloat(v))
	}
	s.err = s.w.Write(rec)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'e', 16, 64)
}

func writeSweep(logger *zap.Logger, path string, run func(*sweepWriter)) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	s := &sweepWriter{logger: logger.With(zap.String("file", path)), w: w}
	run(s)
	w.Flush()
	if s.err == nil {
		s.err = w.Error()
	}
	if cerr := f.Close(); s.err == nil {
		s.err = cerr
	}
	if s.err == nil {
		logger.Info("sweep written", zap.String("file", path))
	}
	return s.err
}

func density(x float64) func() (float64, error) {
	return func() (float64, error) { return mapairy.Density(x) }
}

func distribution(x float64, complement bool) func() (float64, error) {
	return func() (float64, error) { return mapairy.Distribution(x, complement) }
}

func quantile(p float64, complement bool) func() (float64, error) {
	return func() (float64, error) { return mapairy.Quantile(p, complement) }
}

func sweepPDF(s *sweepWriter) {
	s.header("x", "pdf")
	for x := -6.0; x <= 64; x += 1.0 / 1024 {
		s.row(x, density(x))
	}
}

func sweepPDFLimit(s *sweepWriter) {
	s.header("x", "pdf")
	for x0 := 64.0; x0 <= math.Ldexp(1, 64); x0 *= 2 {
		for x := x0; x < x0*2; x += x0 / 256 {
			s.row(x, density(x))
		}
	}
}

func sweepCDF(s *sweepWriter) {
	s.header("x", "cdf", "ccdf")
	for x := -6.0; x <= 64; x += 1.0 / 1024 {
		s.row(x, distribution(x, false), distribution(x, true))
	}
}

func sweepCDFLimit(s *sweepWriter) {
	s.header("x", "ccdf")
	for x0 := 64.0; x0 <= math.Ldexp(1, 64); x0 *= 2 {
		for x := x0; x < x0*2; x += x0 / 256 {
			s.row(x, distribution(x, true))
		}
	}
}

func sweepQuantile(s *sweepWriter) {
	s.header("p", "quantile")
	for p := 1.0 / 8192; p < 1; p += 1.0 / 8192 {
		s.row(p, quantile(p, false))
	}
}

func sweepQuantileLower(s *sweepWriter) {
	s.header("p", "quantile")
	for p := 1.0 / 8192; p > math.Ldexp(1, -1000); p /= 2 {
		s.row(p, quantile(p, false))
	}
}

func sweepQuantileUpper(s *sweepWriter) {
	s.header("q", "cquantile")
	for q0 := 1.0 / 8192; q0 > math.Ldexp(1, -128); q0 /= 2 {
		for q := q0; q > q0/2; q -= q0 / 256 {
			s.row(q, quantile(q, true))
		}
	}
}
