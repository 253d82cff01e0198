// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapairy

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/integrate/quad"
)

// quadNodes is the Gauss-Legendre order for the central region. The
// density is entire and the integration interval is at most
// [leftSeamX, rightSeamX], so the fixed rule converges far past
// double precision.
const quadNodes = 240

// Central-region anchors, evaluated from the tail series once at
// package initialization.
var (
	cdfLeftAnchor   = leftTailCDF(-leftSeamX) // CDF(leftSeamX), about 6.3e-27
	ccdfRightAnchor = tailCCDF(rightSeamX)    // CCDF(rightSeamX), about 6.4e-3
)

// Distribution returns the cumulative distribution function
// P(X <= x) of the Map-Airy distribution, or its complement
// P(X > x) if complement is set.
//
// Each regime computes whichever of the two probabilities is small
// directly, and derives the other by subtraction from 1 only where
// that subtraction is itself exact to working precision. In
// particular the upper tail probability at large x is never formed as
// 1-CDF(x), which would round to 0. The result always lies in [0, 1]
// and saturates to exactly 0 or 1 at extreme finite arguments. A NaN
// or infinite x is reported as ErrNonFinite.
func Distribution(x float64, complement bool) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, errors.Wrapf(ErrNonFinite, "distribution at x=%v", x)
	}
	if complement {
		return ccdf(x), nil
	}
	return cdf(x), nil
}

// directTail returns the tail probability that x's regime computes
// directly, and reports whether that is the lower tail. The direct
// side is the one whose evaluation carries full relative precision;
// it is the smaller side everywhere except between the median and 0,
// where the lower probability grows to 2/3. Both cdf and ccdf derive
// from it, so each regime's series and quadrature logic exists
// exactly once.
func directTail(x float64) (p float64, lower bool) {
	switch {
	case x <= leftSeamX:
		return leftTailCDF(-x), true
	case x >= rightSeamX:
		return tailCCDF(x), false
	case x <= 0:
		p := cdfLeftAnchor + quad.Fixed(pdf, leftSeamX, x, quadNodes, nil, 0)
		return math.Min(p, 1), true
	default:
		q := ccdfRightAnchor + quad.Fixed(pdf, x, rightSeamX, quadNodes, nil, 0)
		return math.Min(q, 1), false
	}
}

// cdf is the unchecked lower probability P(X <= x).
func cdf(x float64) float64 {
	p, lower := directTail(x)
	if lower {
		return p
	}
	return 1 - p
}

// ccdf is the unchecked upper probability P(X > x).
func ccdf(x float64) float64 {
	p, lower := directTail(x)
	if lower {
		return 1 - p
	}
	return p
}
