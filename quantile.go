// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapairy

import (
	"math"

	"github.com/cockroachdb/errors"
)

// quantileMaxIter caps the bracketed search. Bisection alone reaches
// double precision in about 60 halvings; the Newton steps normally
// finish in fewer than 10 iterations.
const quantileMaxIter = 128

// 1/(6·sqrt(pi)), the leading right-tail coefficient: CCDF(x) ~ ccdfLead·x^{-3/2}.
const ccdfLead = 0.094031597257959381158013242594628764073417604887150

// Quantile returns the x with P(X <= x) = p, or, if complement is
// set, the x with P(X > x) = p.
//
// The complement form exists so that callers can request extreme
// upper-tail quantiles without representing a probability
// indistinguishable from 1. p must lie strictly inside (0, 1);
// values outside, including exactly 0 and 1, are reported as
// ErrDomain, and NaN or infinite p as ErrNonFinite. Failure to
// converge within the iteration budget is reported as
// ErrConvergence, distinct from both.
func Quantile(p float64, complement bool) (float64, error) {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, errors.Wrapf(ErrNonFinite, "quantile of p=%v", p)
	}
	if p <= 0 || p >= 1 {
		return 0, errors.Wrapf(ErrDomain, "quantile of p=%v", p)
	}
	// Always solve in the tail whose probability is <= 1/2. The
	// switched probability 1-p is exact (both operands are in
	// [1/2, 1]), so no precision is lost in the conversion.
	lower := p <= 0.5
	if complement {
		lower = !lower
	}
	if lower {
		if !complement {
			return lowerQuantile(p)
		}
		return lowerQuantile(1 - p)
	}
	if complement {
		return upperQuantile(p)
	}
	return upperQuantile(1 - p)
}

// lowerQuantile solves CDF(x) = p for p in (0, 1/2].
//
// The initial estimate inverts the leading left-tail order
// -ln CDF(-s) ~ (4/3)s³. The bracket [-(s0+1), 0] always contains the
// root: the cubic growth of the exponent makes CDF(-(s0+1)) smaller
// than p by at least e^{-4s0²}, and CDF(0) = 2/3 > p.
func lowerQuantile(p float64) (float64, error) {
	s0 := math.Cbrt(-0.75 * math.Log(p))
	return solveTail(cdf, true, p, -(s0 + 1), 0, -s0)
}

// upperQuantile solves CCDF(x) = q for q in (0, 1/2].
//
// The initial estimate inverts the leading right-tail order
// CCDF(x) ~ ccdfLead·x^{-3/2}. For q below CCDF(rightSeamX) the upper
// bracket end starts at twice the estimate, where the series
// correction cannot lift CCDF back above q; the expansion loop is a
// safeguard only.
func upperQuantile(q float64) (float64, error) {
	x0 := math.Pow(ccdfLead/q, 2.0/3.0)
	lo, hi := -2.0, math.Max(rightSeamX, 2*x0)
	for ccdf(hi) > q && hi < math.MaxFloat64/4 {
		lo, hi = hi, hi*2
	}
	return solveTail(ccdf, false, q, lo, hi, x0)
}

// solveTail finds the root of F(x) = p inside the bracket [lo, hi],
// where F is cdf (increasing) or ccdf (decreasing) and |F'| = pdf.
//
// Each iteration first shrinks the bracket with the current sign,
// then attempts a Newton step on ln F(x) - ln p, whose derivative
// ±pdf/F stays well scaled across the tails where F itself spans
// thousands of binary orders of magnitude. A step that leaves the
// bracket is replaced by its midpoint (geometric when the bracket is
// entirely positive, since the upper quantiles reach x ~ 1e25), so
// the bracket shrinks on every iteration and convergence is
// guaranteed.
//
// Termination is threefold: a residual within gTol of zero (F agrees
// with p to the evaluator's own precision; this is the criterion that
// fires when the root sits near x = 0, where relative-in-x tests are
// meaningless), a Newton step below rel·|x|, or a bracket narrower
// than rel·|x|. rel is a few hundred ulps: in the far tails the
// evaluated residual carries that much noise, and demanding more
// would dither below it.
func solveTail(F func(float64) float64, increasing bool, p, lo, hi, x0 float64) (float64, error) {
	const (
		rel  = 1e-14
		gTol = 4e-15
	)
	lnp := math.Log(p)
	x := x0
	if !(x > lo && x < hi) {
		x = lo + (hi-lo)/2
	}
	for i := 0; i < quantileMaxIter; i++ {
		fx := F(x)
		var g float64
		if fx == 0 {
			// Deep-tail underflow: x is beyond the root.
			g = math.Inf(-1)
		} else {
			g = math.Log(fx) - lnp
		}
		if math.Abs(g) <= gTol {
			return x, nil
		}
		if (g < 0) == increasing {
			lo = x
		} else {
			hi = x
		}
		newton := false
		var xn float64
		if d := pdf(x); d > 0 && fx > 0 {
			step := -g * fx / d
			if !increasing {
				step = -step
			}
			xn = x + step
			newton = xn > lo && xn < hi
		}
		if !newton {
			if lo > 0 {
				xn = math.Sqrt(lo) * math.Sqrt(hi)
			} else {
				xn = lo + (hi-lo)/2
			}
		}
		if newton && math.Abs(xn-x) <= rel*math.Abs(x) {
			return xn, nil
		}
		if hi-lo <= rel*math.Max(math.Abs(lo), math.Abs(hi)) {
			return xn, nil
		}
		x = xn
	}
	return 0, errors.Wrapf(ErrConvergence, "after %d iterations at p=%v", quantileMaxIter, p)
}
