// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

import (
	"fmt"
	"math"
)

// wordBits is the number of spins packed into one lattice word.
const wordBits = 32

// LatticeCPU is a bit-packed L x L square spin lattice with periodic
// boundary conditions, updated in place by the checkerboard Metropolis
// sweep of spec.md 4.2. Bit k of word w holds the spin at linear index
// 32*w + k, packed MSB-first: bit k lives at 1<<(31-k). A set bit means
// sigma = +1, a clear bit means sigma = -1. This convention is pinned
// down by the original implementation's DoTheIsingGridSweepsCPU and must
// be matched bit-for-bit by the GPU kernels for the checkerboard-safety
// law and the deterministic-RNG cross-check in spec.md 8 to hold.
type LatticeCPU struct {
	L     uint32
	N     uint32
	Words []uint32

	// Spin is the running magnetization S = sum(sigma_i), maintained
	// incrementally rather than recomputed every sweep.
	Spin int64

	rng *Xorshift32
}

// NewLatticeCPU allocates an L x L lattice, initialized all-up (every
// spin +1, S = N), with the tail bits of the last word -- present
// whenever N is not a multiple of 32 -- also set to 1 so they never
// contribute to S under the XOR-flip arithmetic used by flip.
func NewLatticeCPU(L uint32) (*LatticeCPU, error) {
	if L < 1 {
		return nil, fmt.Errorf("ising: grid length must be >= 1, got %d", L)
	}
	n := L * L
	nWords := (n + wordBits - 1) / wordBits
	words := make([]uint32, nWords)
	for i := range words {
		words[i] = ^uint32(0)
	}
	return &LatticeCPU{
		L:     L,
		N:     n,
		Words: words,
		Spin:  int64(n),
		rng:   SeedFromClock(),
	}, nil
}

// Reset reinitializes the lattice to the all-up state, used by RunDriver
// between beta-steps when Parameters.Quench is true.
func (lt *LatticeCPU) Reset() {
	for i := range lt.Words {
		lt.Words[i] = ^uint32(0)
	}
	lt.Spin = int64(lt.N)
}

// Reseed draws a fresh wall-clock seed for the sweep RNG, called by
// RunDriver.Run once at the start of every beta-step (spec.md 4.1's "seed
// each beta-step from wall-clock time modulo 2^32"), matching
// DoTheIsingGridSweepsCPU's fresh random_engine construction on every
// invocation rather than one generator carried across the whole schedule.
func (lt *LatticeCPU) Reseed() {
	lt.rng = SeedFromClock()
}

// site returns +1 or -1 for the linear site index idx.
func (lt *LatticeCPU) site(idx uint32) int32 {
	w := idx / wordBits
	b := idx % wordBits
	if lt.Words[w]&(1<<(31-b)) != 0 {
		return 1
	}
	return -1
}

// flip toggles the bit for linear site index idx and updates the
// running spin sum given the spin's value before the flip.
func (lt *LatticeCPU) flip(idx uint32, before int32) {
	w := idx / wordBits
	b := idx % wordBits
	lt.Words[w] ^= 1 << (31 - b)
	lt.Spin -= 2 * int64(before)
}

// neighbors returns the linear indices of the four periodic
// nearest-neighbors of (row, col): north, south, east, west.
func (lt *LatticeCPU) neighbors(row, col uint32) (n, s, e, w uint32) {
	L := lt.L
	n = ((row+L-1)%L)*L + col
	s = ((row+1)%L)*L + col
	e = row*L + (col+1)%L
	w = row*L + (col+L-1)%L
	return
}

// transitionProbs returns the ceil(exp(-4*beta)*1e8) and
// ceil(exp(-8*beta)*1e8) acceptance thresholds of spec.md 3, recomputed
// fresh for every beta-step.
func transitionProbs(beta float64) (q4, q8 uint32) {
	q4 = uint32(math.Ceil(math.Exp(-4.0*beta) * 1e8))
	q8 = uint32(math.Ceil(math.Exp(-8.0*beta) * 1e8))
	return
}

// Sweep runs nSweeps checkerboard sweeps at inverse temperature beta,
// appending a magnetization sample every period sweeps once the burnIn
// has elapsed, and returns the filled sample slice. No allocation happens
// inside the sweep loop itself -- the output slice is sized once up
// front from the same K = floor((nSweeps-burnIn-1)/period) formula used
// by both engines.
func (lt *LatticeCPU) Sweep(beta float64, nSweeps, burnIn, period uint32) ([]int32, error) {
	if lt.L == 1 {
		return nil, fmt.Errorf("ising: L=1 lattice is degenerate (every neighbor is the site itself)")
	}
	k := SampleCount(nSweeps, burnIn, period)
	samples := make([]int32, 0, k)
	q4, q8 := transitionProbs(beta)

	for sweep := uint32(0); sweep < nSweeps; sweep++ {
		phase := sweep % 2
		for row := uint32(0); row < lt.L; row++ {
			startCol := (row + phase) % 2
			for col := startCol; col < lt.L; col += 2 {
				idx := row*lt.L + col
				center := lt.site(idx)
				nN, nS, nE, nW := lt.neighbors(row, col)
				sumNeighbors := lt.site(nN) + lt.site(nS) + lt.site(nE) + lt.site(nW)
				deltaE := 2 * center * sumNeighbors

				flip := false
				switch {
				case deltaE <= 0:
					flip = true
				case deltaE == 4:
					flip = lt.rng.Next()%100_000_000 < q4
				case deltaE == 8:
					flip = lt.rng.Next()%100_000_000 < q8
				}

				if flip {
					lt.flip(idx, center)
				}
			}
		}

		if sweep >= burnIn && (sweep-burnIn)%period == 0 && uint32(len(samples)) < k {
			samples = append(samples, int32(lt.Spin))
		}
	}
	return samples, nil
}

// SampleCount returns K = floor((nSweeps-burnIn-1)/period), the number
// of samples a Sweep call of these parameters will emit. It is shared by
// both engines and by callers that need to size an output buffer ahead
// of time (the GPU sample-output SSB, in particular).
func SampleCount(nSweeps, burnIn, period uint32) uint32 {
	if period == 0 || nSweeps <= burnIn+1 {
		return 0
	}
	return (nSweeps - burnIn - 1) / period
}

// CheckSpinSum independently recomputes S from the packed bits and
// returns it, so callers can compare it against the incrementally
// maintained lt.Spin for the invariant spot-check of spec.md 8.
func (lt *LatticeCPU) CheckSpinSum() int64 {
	var s int64
	for i := uint32(0); i < lt.N; i++ {
		s += int64(lt.site(i))
	}
	return s
}
