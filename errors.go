// Copyright 2026 The mapairy Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mapairy

import "github.com/cockroachdb/errors"

// The evaluators report three distinct failure kinds. Callers
// discriminate with errors.Is; saturating results (a density or tail
// probability rounding to exactly 0 or 1 at extreme finite arguments)
// are normal values, not errors.
var (
	// ErrDomain reports a probability argument outside the open
	// interval (0, 1).
	ErrDomain = errors.New("mapairy: probability outside (0, 1)")

	// ErrNonFinite reports a NaN or infinite argument.
	ErrNonFinite = errors.New("mapairy: non-finite argument")

	// ErrConvergence reports that the quantile search exhausted its
	// iteration budget before meeting tolerance. It does not occur
	// for probabilities in the documented operating range.
	ErrConvergence = errors.New("mapairy: quantile iteration did not converge")
)
