// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinderCumulantSaturated(t *testing.T) {
	// Every sample at S=N -> m=1 for all samples -> U4 = 1 - 1/3 = 2/3.
	samples := []int32{16, 16, 16, 16}
	u4, err := BinderCumulant(samples, 16)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, u4, 1e-12)
}

func TestBinderCumulantEmptySamplesErrors(t *testing.T) {
	_, err := BinderCumulant(nil, 16)
	assert.Error(t, err)
}

func TestBinderCumulantSignInvariant(t *testing.T) {
	// U4 is computed from even powers of m, so flipping every sample's
	// sign must not change the result (spec.md 8, Law: Binder symmetry).
	samples := []int32{4, -8, 12, -2, 6}
	u4a, err := BinderCumulant(samples, 16)
	require.NoError(t, err)
	u4b, err := BinderCumulant(AbsSamples(samples), 16)
	require.NoError(t, err)
	assert.InDelta(t, u4a, u4b, 1e-12)

	negated := make([]int32, len(samples))
	for i, s := range samples {
		negated[i] = -s
	}
	u4c, err := BinderCumulant(negated, 16)
	require.NoError(t, err)
	assert.InDelta(t, u4a, u4c, 1e-12)
}

func TestAbsSamples(t *testing.T) {
	in := []int32{-3, 0, 5, -7}
	assert.Equal(t, []int32{3, 0, 5, 7}, AbsSamples(in))
}
