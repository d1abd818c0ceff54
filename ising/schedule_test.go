// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetaScheduleLength(t *testing.T) {
	sched := BetaSchedule(1.0, 0.2, 0.1)
	assert.Len(t, sched, 8)
	assert.InDelta(t, 1.0, sched[0], 1e-12)
	assert.InDelta(t, 0.3, sched[len(sched)-1], 1e-9)
}

func TestBetaScheduleMonotonicDescending(t *testing.T) {
	sched := BetaSchedule(2.0, 0.5, 0.25)
	for i := 1; i < len(sched); i++ {
		assert.Less(t, sched[i], sched[i-1])
	}
}

func TestBetaScheduleEmptyWhenEndAboveStart(t *testing.T) {
	sched := BetaSchedule(0.5, 1.0, 0.1)
	assert.Empty(t, sched)
}
