// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapairy

import "math"

// Regime thresholds. The real line is partitioned so that each
// formulation is used only where it carries full working precision:
// the Airy-function form of the density is exact but cancels its
// leading asymptotic order for positive x, losing about 3ζε relative
// (ζ = (2/3)x³) by pdfSeamX; the tail series truncates below 1e-15
// from pdfSeamX upward. The distribution seams are placed where the
// respective tail series have converged well past machine epsilon.
const (
	pdfZeroX   = -9.0 // pdf underflows to exactly 0 at or below this
	pdfSeamX   = 3.25 // Airy form below, right-tail series at or above
	leftSeamX  = -3.5 // CDF left-tail series at or below
	rightSeamX = 6.0  // CCDF right-tail series at or above
)

// 1/sqrt(pi)
const invSqrtPi = 0.56418958354775628694807945156077258584405062932900

// asymTerms is the truncation order of the four asymptotic series.
// At the seams the smallest retained terms are already below 1e-16
// relative; far from the seams the series converge much faster.
const asymTerms = 28

// Asymptotic series coefficients, all derived from the Airy
// asymptotic coefficients u_k of DLMF 9.7.2 via the recurrence
//
//	u_k = (6k-5)(6k-3)(6k-1) / ((2k-1)·216k) · u_{k-1},  u_0 = 1.
//
// Substituting the large-argument expansions of Ai and Ai' into the
// density and matching powers of ζ = (2/3)|x|³ gives, with
// c_k = (-1)^k·2u_k/(1-6k):
//
//	pdf(-s)  = (√s/√π)  e^{-(4/3)s³} Σ c_k ζ^{-k}            (s → +∞)
//	CDF(-s)  = (1/√π)   e^{-(4/3)s³} s^{-3/2} Σ d_k s^{-3k}
//	pdf(x)   = (√x/√π)  Σ a_k ζ^{-k},  a_k = 6k·c_k          (x → +∞)
//	CCDF(x)  = (x^{3/2}/√π) Σ a_k/(3k-3/2) ζ^{-k}
//
// where the CDF coefficients satisfy 4d_k = c_k(3/2)^k - (3k-3/2)d_{k-1},
// d_0 = 1/2, obtained by differentiating the CDF form and matching it
// against the density series. The CCDF coefficients come from
// integrating the density series term by term. Leading orders:
// pdf(x) ~ x^{-5/2}/(4√π) and CCDF(x) ~ x^{-3/2}/(6√π) on the right,
// pdf(-s) ~ (2√s/√π)e^{-(4/3)s³} on the left.
var pdfTailCoef, ccdfTailCoef, pdfLeftCoef, cdfLeftCoef = asymCoefs()

func asymCoefs() (a, g, c, d []float64) {
	a = make([]float64, asymTerms)
	g = make([]float64, asymTerms)
	c = make([]float64, asymTerms+1)
	d = make([]float64, asymTerms+1)

	c[0] = 2
	d[0] = 0.5
	u, pow := 1.0, 1.0
	for k := 1; k <= asymTerms; k++ {
		kk := float64(k)
		u *= (6*kk - 5) * (6*kk - 3) * (6*kk - 1) / ((2*kk - 1) * 216 * kk)
		ck := 2 * u / (1 - 6*kk)
		if k%2 == 1 {
			ck = -ck
		}
		pow *= 1.5
		c[k] = ck
		d[k] = (ck*pow - (3*kk-1.5)*d[k-1]) / 4
		a[k-1] = 6 * kk * ck
		g[k-1] = a[k-1] / (3*kk - 1.5)
	}
	return a, g, c, d
}

// polyval evaluates Σ c[i]·u^i by Horner's rule.
func polyval(c []float64, u float64) float64 {
	s := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		s = s*u + c[i]
	}
	return s
}

// tailPDF evaluates the right-tail density series. Powers of 1/x keep
// every intermediate finite for arbitrarily large x; the result
// underflows to 0 only once the true value leaves the subnormal range.
func tailPDF(x float64) float64 {
	invx := 1 / x
	u := 1.5 * invx * invx * invx // 1/ζ
	return 1.5 * invSqrtPi * invx * invx * math.Sqrt(invx) * polyval(pdfTailCoef, u)
}

// tailCCDF evaluates the right-tail upper probability series,
// CCDF(x) = P(X > x) for x >= rightSeamX.
func tailCCDF(x float64) float64 {
	invx := 1 / x
	u := 1.5 * invx * invx * invx
	return 1.5 * invSqrtPi * invx * math.Sqrt(invx) * polyval(ccdfTailCoef, u)
}

// leftTailCDF evaluates the left-tail lower probability series,
// CDF(-s) = P(X <= -s) for s >= -leftSeamX. It underflows to exactly
// 0 once (4/3)s³ passes the exponent range, around s = 8.3.
func leftTailCDF(s float64) float64 {
	v := 1 / (s * s * s)
	e := math.Exp(-4.0 / 3.0 * s * s * s)
	return invSqrtPi * e * math.Sqrt(v) * polyval(cdfLeftCoef, v)
}
