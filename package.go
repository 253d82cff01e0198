// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mapairy evaluates the Map-Airy probability distribution.
//
// The Map-Airy distribution is the stable distribution with index
// α = 3/2 and skewness β = 1, here oriented with its heavy power-law
// tail toward +∞ and normalized so that its density is
//
//	pdf(x) = 2 exp((2/3)x³) (−x Ai(x²) − Ai'(x²))
//
// where Ai is the Airy function of the first kind. This is the
// distribution of the renormalized cost of a random map in the sense
// of Banderier, Flajolet, Schaeffer and Soria, "Random maps,
// coalescing saddles, singularity analysis, and Airy phenomena",
// Random Structures & Algorithms 19 (2001).
//
// The package exposes the density, the cumulative distribution
// function together with its complement, and the quantile function
// together with its complement. All evaluators are pure functions
// with no shared mutable state and may be called concurrently. They
// hold relative accuracy over the full double range: the density and
// distribution are exercised out to x = 2^64, the quantile down to
// probabilities of 2^-1000 and complementary probabilities of 2^-128.
package mapairy // import "github.com/numfold/mapairy"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
