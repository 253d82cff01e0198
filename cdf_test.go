// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapairy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributionReference(t *testing.T) {
	// P(X <= 0) = 2/3 exactly: the positivity parameter of the
	// strictly stable law with α = 3/2, β = 1.
	v, err := Distribution(0, false)
	require.NoError(t, err)
	require.InEpsilon(t, 2.0/3.0, v, 1e-12)

	c, err := Distribution(0, true)
	require.NoError(t, err)
	require.InEpsilon(t, 1.0/3.0, c, 1e-12)
}

func TestComplementIdentity(t *testing.T) {
	xs := []float64{-6, -3.5001, -3.5, -3.4999, -2, -1, -0.25, 0, 0.25,
		1.5, 3, 5.9999, 6, 6.0001, 10, 64, 1024, math.Ldexp(1, 40)}
	for _, x := range xs {
		p, err := Distribution(x, false)
		require.NoError(t, err)
		q, err := Distribution(x, true)
		require.NoError(t, err)
		assert.InDelta(t, 1, p+q, 1e-15, "x=%v", x)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
		assert.GreaterOrEqual(t, q, 0.0)
		assert.LessOrEqual(t, q, 1.0)
	}
}

func TestDistributionMonotone(t *testing.T) {
	prev := 0.0
	for x := -6.0; x <= 10; x += 0.125 {
		p, err := Distribution(x, false)
		require.NoError(t, err)
		if p < prev {
			t.Fatalf("CDF(%v) = %v < %v", x, p, prev)
		}
		prev = p
	}
	for x := 16.0; x <= math.Ldexp(1, 64); x *= 2 {
		p, err := Distribution(x, false)
		require.NoError(t, err)
		if p < prev {
			t.Fatalf("CDF(%v) = %v < %v", x, p, prev)
		}
		prev = p
	}
}

func TestDistributionTails(t *testing.T) {
	p, err := Distribution(-20, false)
	require.NoError(t, err)
	require.Equal(t, 0.0, p)
	q, err := Distribution(-20, true)
	require.NoError(t, err)
	require.Equal(t, 1.0, q)

	// At x = 2^64 the upper tail is ~2^{-96}/(6·sqrt(pi)): tiny but
	// exactly representable, never 0 and never NaN.
	x := math.Ldexp(1, 64)
	q, err = Distribution(x, true)
	require.NoError(t, err)
	require.InEpsilon(t, math.Ldexp(1, -96)/(6*math.Sqrt(math.Pi)), q, 1e-12)
	p, err = Distribution(x, false)
	require.NoError(t, err)
	require.Equal(t, 1.0, p)

	// The left tail is still normal (not yet underflowed) at -8.
	p, err = Distribution(-8, false)
	require.NoError(t, err)
	require.Greater(t, p, 0.0)
	require.Less(t, p, 1e-290)
}

// The CDF's numerical derivative must reproduce the density across
// regime seams and quadrature anchoring.
func TestDistributionDerivative(t *testing.T) {
	// h balances the O(h²) truncation (the log-derivative reaches
	// 4s² = 36 at x = -3) against cancellation in the difference.
	const h = 1e-5
	for _, x := range []float64{-3, -2, -1, -0.3, 0.5, 2, 3.5, 5} {
		hi, err := Distribution(x+h, false)
		require.NoError(t, err)
		lo, err := Distribution(x-h, false)
		require.NoError(t, err)
		d, err := Density(x)
		require.NoError(t, err)
		assert.InEpsilon(t, d, (hi-lo)/(2*h), 1e-4, "x=%v", x)
	}
}

func TestDistributionSeamContinuity(t *testing.T) {
	const eps = 1e-9
	for _, tc := range []struct {
		x   float64
		tol float64
	}{
		{leftSeamX, 1e-6}, // CDF ~ 6e-27 here; pdf/CDF ~ 49
		{0, 1e-8},
		{rightSeamX, 1e-10},
	} {
		a, err := Distribution(tc.x-eps, false)
		require.NoError(t, err)
		b, err := Distribution(tc.x+eps, false)
		require.NoError(t, err)
		assert.InEpsilon(t, a, b, tc.tol, "x=%v", tc.x)
		assert.LessOrEqual(t, a, b, "x=%v", tc.x)
	}
}

// Both probabilities must derive from one directly-computed tail per
// regime, so the derived side is always exactly one subtraction away.
func TestDistributionDirectTail(t *testing.T) {
	for _, x := range []float64{-5, -3.5, -1, -0.5, 0, 2, 6, 100, math.Ldexp(1, 50)} {
		p, lower := directTail(x)
		require.GreaterOrEqual(t, p, 0.0, "x=%v", x)
		require.LessOrEqual(t, p, 1.0, "x=%v", x)
		if lower {
			require.Equal(t, p, cdf(x), "x=%v", x)
			require.Equal(t, 1-p, ccdf(x), "x=%v", x)
		} else {
			require.Equal(t, p, ccdf(x), "x=%v", x)
			require.Equal(t, 1-p, cdf(x), "x=%v", x)
		}
	}
}

func TestDistributionErrors(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Distribution(x, false)
		assert.ErrorIs(t, err, ErrNonFinite, "x=%v", x)
		_, err = Distribution(x, true)
		assert.ErrorIs(t, err, ErrNonFinite, "x=%v", x)
	}
}
