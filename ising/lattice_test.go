// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLatticeCPUAllUp(t *testing.T) {
	lt, err := NewLatticeCPU(4)
	require.NoError(t, err)
	assert.EqualValues(t, 16, lt.N)
	assert.EqualValues(t, 16, lt.Spin)
	for i := uint32(0); i < lt.N; i++ {
		assert.EqualValues(t, 1, lt.site(i))
	}
}

func TestLatticeCPUTailBitsDoNotContribute(t *testing.T) {
	// L=3 -> N=9, which needs 1 word (32 bits) with 23 unused tail bits.
	lt, err := NewLatticeCPU(3)
	require.NoError(t, err)
	assert.EqualValues(t, 9, lt.N)
	assert.Len(t, lt.Words, 1)
	assert.EqualValues(t, 9, lt.CheckSpinSum())
}

func TestLatticeCPUDeepFerromagnetStaysSaturated(t *testing.T) {
	// Scenario 1 from spec.md 8: L=4, beta=10 (deep ferromagnet),
	// all-up start -> S remains N=16 for every sample, U4 = 2/3 exactly.
	lt, err := NewLatticeCPU(4)
	require.NoError(t, err)
	samples, err := lt.Sweep(10.0, 1000, 0, 1)
	require.NoError(t, err)
	require.Len(t, samples, SampleCountInt(1000, 0, 1))
	for _, s := range samples {
		assert.EqualValues(t, 16, s)
	}
	u4, err := BinderCumulant(samples, lt.N)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, u4, 1e-12)
}

func TestLatticeCPUSpinSumInvariant(t *testing.T) {
	lt, err := NewLatticeCPU(20)
	require.NoError(t, err)
	_, err = lt.Sweep(0.4, 500, 0, 1000000) // no sampling, just sweep
	require.NoError(t, err)
	assert.Equal(t, lt.CheckSpinSum(), lt.Spin)
}

func TestLatticeCPUL1Rejected(t *testing.T) {
	lt, err := NewLatticeCPU(1)
	require.NoError(t, err)
	_, err = lt.Sweep(1.0, 10, 0, 1)
	assert.Error(t, err)
}

func TestLatticeCPUZeroSamplesWhenBurnInTooLarge(t *testing.T) {
	lt, err := NewLatticeCPU(4)
	require.NoError(t, err)
	samples, err := lt.Sweep(0.4, 10, 9, 1) // N_sweeps = W+1 -> K=0
	require.NoError(t, err)
	assert.Empty(t, samples)
	_, err = BinderCumulant(samples, lt.N)
	assert.Error(t, err)
}

func TestLatticeCPUSampleTiming(t *testing.T) {
	lt, err := NewLatticeCPU(4)
	require.NoError(t, err)
	const nSweeps, burnIn, period = 20, 3, 2
	samples, err := lt.Sweep(10.0, nSweeps, burnIn, period)
	require.NoError(t, err)
	want := SampleCountInt(nSweeps, burnIn, period)
	assert.Len(t, samples, want)
}

func TestLatticeCPUResetReturnsToAllUp(t *testing.T) {
	lt, err := NewLatticeCPU(6)
	require.NoError(t, err)
	_, err = lt.Sweep(0.3, 200, 0, 1000000)
	require.NoError(t, err)
	lt.Reset()
	assert.EqualValues(t, lt.N, lt.Spin)
	assert.EqualValues(t, lt.N, lt.CheckSpinSum())
}

func TestLatticeCPUNotMultipleOf32Survives(t *testing.T) {
	// L such that N is not a multiple of 32: L=6 -> N=36.
	lt, err := NewLatticeCPU(6)
	require.NoError(t, err)
	assert.EqualValues(t, 36, lt.N)
	assert.Len(t, lt.Words, 2) // ceil(36/32) = 2
	samples, err := lt.Sweep(0.2, 50, 0, 1000000)
	require.NoError(t, err)
	_ = samples
	assert.Equal(t, lt.CheckSpinSum(), lt.Spin)
}

// SampleCountInt is a small test-local wrapper so assertions read
// naturally with int-typed testify helpers.
func SampleCountInt(nSweeps, burnIn, period uint32) int {
	return int(SampleCount(nSweeps, burnIn, period))
}

func TestLatticeCPUReseedChangesRNGState(t *testing.T) {
	lt, err := NewLatticeCPU(4)
	require.NoError(t, err)
	before := lt.rng.State
	_, err = lt.Sweep(0.4, 20, 0, 1000000)
	require.NoError(t, err)
	afterFirstSweep := lt.rng.State

	lt.Reseed()
	reseeded := lt.rng.State
	_, err = lt.Sweep(0.4, 20, 0, 1000000)
	require.NoError(t, err)
	afterSecondSweep := lt.rng.State

	assert.NotEqual(t, before, reseeded, "Reseed must draw a fresh wall-clock seed")
	assert.NotEqual(t, afterFirstSweep, afterSecondSweep, "RNG state must differ once reseeded between sweeps")
}
