// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx provides real-argument special-function primitives that are
// not in the standard math package.
package mathx // import "github.com/numfold/mapairy/mathx"

import "gonum.org/v1/gonum/mathext"

// AiryAi returns the Airy function of the first kind Ai(x) for real x.
//
// Ai solves the Airy equation y'' = x·y and decays like
// exp(-(2/3)x^{3/2}) for large positive x (DLMF §9.7). gonum's
// implementation is defined on the complex plane; on the real axis the
// imaginary part vanishes identically.
func AiryAi(x float64) float64 {
	return real(mathext.AiryAi(complex(x, 0)))
}

// AiryAiDeriv returns the derivative Ai'(x) of the Airy function of
// the first kind for real x.
func AiryAiDeriv(x float64) float64 {
	return real(mathext.AiryAiDeriv(complex(x, 0)))
}
