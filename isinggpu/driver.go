// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isinggpu

import (
	"fmt"

	"github.com/emer/isingcumulant/ising"
)

// NewEngineFunc returns a constructor suitable for ising.RunMultiGrid:
// one Context is shared across every grid in the series (the device and
// queue are acquired once), while a fresh SweepEngine -- and hence a
// fresh descriptor set over the shared arenas -- is built per grid.
func NewEngineFunc(ctx *Context, variant KernelVariant, shaderDir string) func(ising.Parameters) (ising.Engine, error) {
	first := true
	return func(p ising.Parameters) (ising.Engine, error) {
		if !first {
			ctx.ResetArenas()
		}
		first = false

		eng, err := NewSweepEngine(ctx, variant, p.L, p.FlushInterval, shaderDir)
		if err != nil {
			return nil, &ising.GPUFault{Stage: fmt.Sprintf("engine setup for L=%d", p.L), Err: err}
		}
		return eng, nil
	}
}
