// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isinggpu

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goki/vgpu/vgpu"
)

// LocalWorkgroupSize is the local workgroup size along X. NewPipeline
// sets it as specialization constant 0 (spec.md 4.7), but the kernels in
// shaders/ declare no specialization constant and hardcode
// numthreads(64, 1, 1), so this value has to equal that literal for
// WorkgroupCount to cover every site.
const LocalWorkgroupSize = 64

// Pipeline wraps the one compute pipeline used for every half-sweep
// dispatch: load the variant's precompiled SPIR-V, set its
// specialization constant, and declare its single push-constant range
// (the half-sweep's phase, spec.md 4.7).
type Pipeline struct {
	Variant KernelVariant
	Pipe    *vgpu.Pipeline
}

// NewPipeline loads the SPIR-V file for variant from dir (the cmd
// package passes its --shader-dir flag, which defaults to the current
// working directory rather than the executable's directory) and
// configures the pipeline's specialization constant and push-constant
// range.
func NewPipeline(ctx *Context, variant KernelVariant, dir string) (*Pipeline, error) {
	path := filepath.Join(dir, variant.ShaderFile())
	code, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("isinggpu: failed to read shader %s: %w", path, err)
	}

	pl := ctx.Sys.NewPipeline(variant.String())
	if err := pl.AddShaderCode(variant.String(), vgpu.ComputeShader, code); err != nil {
		return nil, fmt.Errorf("isinggpu: failed to load shader %s: %w", path, err)
	}
	pl.SetSpecConstant(vgpu.ComputeShader, 0, uint32(LocalWorkgroupSize))
	pl.AddPushConst("Phase", vgpu.ComputeShader, 4)

	ctx.Sys.Config()

	return &Pipeline{Variant: variant, Pipe: pl}, nil
}

// WorkgroupCount returns the dispatch size for one half-sweep over an
// N-site lattice: ceil(N / (2 * LocalWorkgroupSize)), since each
// invocation updates one site of the active checkerboard color
// (spec.md 4.7).
func WorkgroupCount(n uint32) uint32 {
	denom := uint32(2 * LocalWorkgroupSize)
	return (n + denom - 1) / denom
}

// PushPhase records the half-sweep's phase (0 or 1) into the pipeline's
// push-constant range ahead of a dispatch.
func (p *Pipeline) PushPhase(cmd uintptr, phase uint32) {
	p.Pipe.PushConstant(cmd, vgpu.ComputeShader, 0, 4, &phase)
}
