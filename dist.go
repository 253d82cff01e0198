// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapairy

import "math"

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for y. That is,
	// InvCDF(CDF(x)) = x. The value of y must be in [0, 1].
	InvCDF(y float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)
}

// MapAiryDist is the Map-Airy distribution as a Dist value.
//
// It adapts the package-level evaluators to the conventional
// float64-only method set: invalid inputs yield NaN from PDF and CDF,
// and InvCDF maps 0 and 1 to -Inf and +Inf and anything outside
// [0, 1] to NaN. Callers that need to distinguish failure kinds
// should use Density, Distribution and Quantile directly.
type MapAiryDist struct{}

func (MapAiryDist) PDF(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nan
	}
	return pdf(x)
}

func (MapAiryDist) CDF(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nan
	}
	return cdf(x)
}

func (MapAiryDist) InvCDF(y float64) float64 {
	if y < 0 || y > 1 || math.IsNaN(y) {
		return nan
	} else if y == 0 {
		return -inf
	} else if y == 1 {
		return inf
	}
	x, err := Quantile(y, false)
	if err != nil {
		return nan
	}
	return x
}

// Bounds matches the classical plotting range of the distribution:
// the lower probability at -6 is below 1e-125 and the upper
// probability at 64 is below 2e-4.
func (MapAiryDist) Bounds() (float64, float64) {
	return -6, 64
}
