// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapairy

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/numfold/mapairy/mathx"
)

// Density returns the probability density function of the Map-Airy
// distribution at x.
//
// The result is non-negative and finite for every finite x. In the
// far tails it saturates to exactly 0 where the true value drops out
// of the double range; that is a normal result, not an error. A NaN
// or infinite x is reported as ErrNonFinite.
func Density(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.Wrapf(ErrNonFinite, "density at x=%v", x)
	}
	return pdf(x), nil
}

// pdf is the unchecked density, shared with the distribution
// quadrature and the quantile Newton steps.
func pdf(x float64) float64 {
	switch {
	case x <= pdfZeroX:
		// (4/3)|x|³ > 972 here, below the smallest subnormal.
		return 0
	case x < pdfSeamX:
		// Airy-function form. For x <= 0 both terms are positive,
		// so the sum is stable all the way down to the underflow
		// edge near pdfZeroX.
		return 2 * math.Exp(2.0/3.0*x*x*x) *
			(-x*mathx.AiryAi(x*x) - mathx.AiryAiDeriv(x*x))
	default:
		return tailPDF(x)
	}
}
