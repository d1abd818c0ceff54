// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

import "time"

// Xorshift32 is the 32-bit xorshift generator used by both the CPU and
// GPU engines. The returned value from Next is both the next output and
// the next state -- there is no separate "state" field beyond the single
// uint32 this type wraps.
type Xorshift32 struct {
	State uint32
}

// NewXorshift32 returns a generator seeded from s. A zero seed is
// replaced with 1, since xorshift32 has a fixed point at zero: it would
// never escape.
func NewXorshift32(s uint32) *Xorshift32 {
	if s == 0 {
		s = 1
	}
	return &Xorshift32{State: s}
}

// SeedFromClock returns a generator seeded from the wall-clock time
// modulo 2^32, the same reseeding rule used at the start of every
// beta-step (spec.md 4.1).
func SeedFromClock() *Xorshift32 {
	return NewXorshift32(uint32(time.Now().UnixNano()))
}

// Next advances the generator and returns the new 32-bit value. Each
// call consumes exactly one state transition.
func (x *Xorshift32) Next() uint32 {
	s := x.State
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.State = s
	return s
}
