// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapairy

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numfold/mapairy/mathx"
)

// pdf(0) = -2 Ai'(0) = 2/(3^{1/3} Γ(1/3)).
const pdfAtZero = 0.51763880758561360

func TestDensityReference(t *testing.T) {
	v, err := Density(0)
	require.NoError(t, err)
	require.InEpsilon(t, pdfAtZero, v, 1e-13)

	// Unimodal shape: the mode sits left of 0 and the heavy tail
	// makes the density fall off slowly on the right.
	moded, _ := Density(-0.5)
	right, _ := Density(1)
	require.Greater(t, moded, v)
	require.Greater(t, v, right)
	require.Greater(t, right, 0.0)
}

func TestDensityNonNegative(t *testing.T) {
	for x := -8.0; x <= 64; x += 0.125 {
		v, err := Density(x)
		require.NoError(t, err)
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Density(%v) = %v", x, v)
		}
	}
}

func TestDensityTails(t *testing.T) {
	for _, x := range []float64{-9, -9.5, -20, -1e10, -1e300} {
		v, err := Density(x)
		require.NoError(t, err)
		require.Equal(t, 0.0, v, "x=%v", x)
	}

	// Right tail stays positive and tracks x^{-5/2}/(4·sqrt(pi))
	// across the doubling range out to 2^64.
	for x := 64.0; x <= math.Ldexp(1, 64); x *= 2 {
		v, err := Density(x)
		require.NoError(t, err)
		lead := 1 / (4 * math.Sqrt(math.Pi) * x * x * math.Sqrt(x))
		require.InEpsilon(t, lead, v, 1e-3, "x=%v", x)
		require.Greater(t, v, 0.0)
	}

	// Underflows to exactly 0 only far outside the double tail.
	v, err := Density(1e300)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// The Airy-function form and the right-tail series must agree at the
// regime seam to the cancellation bound of the former.
func TestDensitySeam(t *testing.T) {
	x := pdfSeamX
	direct := 2 * math.Exp(2.0/3.0*x*x*x) *
		(-x*mathx.AiryAi(x*x) - mathx.AiryAiDeriv(x*x))
	require.InEpsilon(t, direct, tailPDF(x), 5e-13)

	// And again well inside the series' range.
	x = 4.5
	direct = 2 * math.Exp(2.0/3.0*x*x*x) *
		(-x*mathx.AiryAi(x*x) - mathx.AiryAiDeriv(x*x))
	require.InEpsilon(t, direct, tailPDF(x), 1e-12)
}

func TestDensityErrors(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Density(x)
		assert.ErrorIs(t, err, ErrNonFinite, "x=%v", x)
	}
	require.False(t, errors.Is(ErrNonFinite, ErrDomain))
}
