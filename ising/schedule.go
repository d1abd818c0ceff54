// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

import "math"

// BetaSchedule returns the descending arithmetic sequence
// betaStart, betaStart-delta, ..., truncated to
// D = floor((betaStart-betaEnd)/delta) points, per spec.md 3.
func BetaSchedule(betaStart, betaEnd, delta float64) []float64 {
	d := int(math.Floor((betaStart - betaEnd) / delta))
	if d < 0 {
		d = 0
	}
	out := make([]float64, d)
	beta := betaStart
	for i := 0; i < d; i++ {
		out[i] = beta
		beta -= delta
	}
	return out
}
