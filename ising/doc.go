// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ising implements the checkerboard single-spin-flip Metropolis
// simulation of the 2-D ferromagnetic Ising model on a periodic square
// lattice, and the reduction of sampled magnetization to the fourth-order
// Binder cumulant U4(beta) = 1 - <m^4> / (3<m^2>^2).
//
// The CPU engine in this package and the GPU engine in isinggpu implement
// the same Engine interface and must produce statistically identical
// results for the same beta schedule, sweep count, burn-in and sampling
// period -- see RunDriver.
package ising
