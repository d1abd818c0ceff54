// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders holds the hand-written HLSL compute kernel sources,
// compiled to SPIR-V with glslangValidator via the go:generate lines
// below (axon/gpu.go's gpu_*.hlsl + go:generate layout, without gosl).
//
// Unlike axon, these kernels are not embedded into the binary: isinggpu
// loads them from --shader-dir at runtime (isinggpu.NewPipeline), so a
// grid run can point at a directory of freshly recompiled .spv files
// without a rebuild. Compile with:
//
//	glslangValidator -V shaders/ising_1bit.hlsl -S comp -o shaders/ising_1bit.spv
//	glslangValidator -V shaders/ising_1int.hlsl -S comp -o shaders/ising_1int.spv
//
// The two .hlsl sources below implement the same checkerboard
// single-spin-flip Metropolis sweep (spec.md 4.1, 4.7) over the two
// KernelVariant lattice layouts; isinggpu.KernelVariant.ShaderFile names
// the compiled output each variant expects to find in the --shader-dir
// directory (the current working directory by default).
package shaders

//go:generate glslangValidator -V ising_1bit.hlsl -S comp -o ising_1bit.spv
//go:generate glslangValidator -V ising_1int.hlsl -S comp -o ising_1int.spv
