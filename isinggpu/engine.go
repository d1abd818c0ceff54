// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isinggpu

import (
	"fmt"
	"math"

	vk "github.com/goki/vulkan"
	"github.com/sirupsen/logrus"
)

// FlushInterval is the default number of sweeps recorded into one
// command buffer before it is ended, submitted, waited on, and a fresh
// one begun, matching DoTheIsingGridSweepsGPU's 500,000-sweep flush
// (original_source/Setup.cpp). An unbounded command buffer both exceeds
// driver recording limits and delays the first submission. A run can
// override it per Parameters.FlushInterval; zero means "use this
// default".
const FlushInterval = 500_000

// shaderBarrier is the unconditional read-after-write /
// write-after-read memory barrier recorded between every half-sweep
// dispatch: phase 0 writes the even sites reading odd neighbors, phase 1
// writes the odd sites reading even neighbors, so every dispatch must
// wait for the previous one's writes to become visible (spec.md 4.8
// step 3).
func shaderBarrier(cmd vk.CommandBuffer) {
	stage := vk.PipelineStageFlags(vk.PipelineStageComputeShaderBit)
	vk.CmdPipelineBarrier(cmd, stage, stage, vk.DependencyFlags(0), 1,
		[]vk.MemoryBarrier{{
			SType:         vk.StructureTypeMemoryBarrier,
			SrcAccessMask: vk.AccessFlags(vk.AccessShaderWriteBit),
			DstAccessMask: vk.AccessFlags(vk.AccessShaderReadBit | vk.AccessShaderWriteBit),
		}}, 0, nil, 0, nil)
}

// SweepEngine drives the compute pipeline over one grid size, dispatched
// checkerboard half-sweep by half-sweep. It implements ising.Engine and
// ising.Resetter so ising.RunDriver can drive it identically to
// ising.LatticeCPU.
type SweepEngine struct {
	Ctx  *Context
	Res  *Resources
	Pipe *Pipeline
	L, N uint32

	// flushInterval is this engine's command-buffer flush cadence;
	// falls back to FlushInterval when zero.
	flushInterval uint32
}

// NewSweepEngine builds the descriptor set and pipeline for an L x L
// grid under variant. flushInterval overrides FlushInterval for this
// engine when nonzero (ising.Parameters.FlushInterval).
func NewSweepEngine(ctx *Context, variant KernelVariant, l, flushInterval uint32, shaderDir string) (*SweepEngine, error) {
	n := l * l
	res, err := NewResources(ctx, variant, l, n)
	if err != nil {
		return nil, fmt.Errorf("isinggpu: resource setup failed: %w", err)
	}
	pipe, err := NewPipeline(ctx, variant, shaderDir)
	if err != nil {
		return nil, fmt.Errorf("isinggpu: pipeline setup failed: %w", err)
	}
	if flushInterval == 0 {
		flushInterval = FlushInterval
	}
	return &SweepEngine{Ctx: ctx, Res: res, Pipe: pipe, L: l, N: n, flushInterval: flushInterval}, nil
}

// Reset reinitializes the lattice to all-up, used by ising.RunDriver
// between beta-steps when Parameters.Quench is set.
func (e *SweepEngine) Reset() {
	if err := e.Res.Reset(); err != nil {
		logrus.WithError(err).Error("isinggpu: failed to reset lattice")
	}
}

// transitionProbs mirrors ising.transitionProbs; duplicated rather than
// imported since ising keeps it unexported (it is a one-line formula,
// not worth a shared internal package for).
func transitionProbs(beta float64) (q4, q8 uint32) {
	q4 = uint32(math.Ceil(math.Exp(-4.0*beta) * 1e8))
	q8 = uint32(math.Ceil(math.Exp(-8.0*beta) * 1e8))
	return
}

// sampleCount mirrors ising.SampleCount.
func sampleCount(nSweeps, burnIn, period uint32) uint32 {
	if period == 0 || nSweeps <= burnIn+1 {
		return 0
	}
	return (nSweeps - burnIn - 1) / period
}

// Sweep runs nSweeps checkerboard half-sweeps at inverse temperature
// beta, recording one dispatch per half-sweep with a barrier and
// periodic command-buffer flush, reading the spin-sum accumulator S
// back to the host at every sample boundary (spec.md 4.8). A sample
// boundary forces an early flush of whatever is currently recorded, so
// the host's read of S observes every dispatch up to and including that
// sweep; FlushInterval still bounds the command buffer between
// boundaries on beta-steps with sparse or no sampling.
func (e *SweepEngine) Sweep(beta float64, nSweeps, burnIn, period uint32) ([]int32, error) {
	if e.L == 1 {
		return nil, fmt.Errorf("isinggpu: L=1 lattice is degenerate")
	}
	q4, q8 := transitionProbs(beta)
	if err := e.Res.WriteUniform(q4, q8); err != nil {
		return nil, fmt.Errorf("isinggpu: %w", err)
	}
	e.Ctx.Sys.Mem.SyncToGPU()

	k := sampleCount(nSweeps, burnIn, period)
	samples := make([]int32, 0, k)

	cmd := e.Ctx.Sys.ComputeCmdBuff()
	e.Ctx.Sys.CmdResetBindVars(cmd, 0)

	flush := func() {
		e.Ctx.Sys.ComputeCmdEnd(cmd)
		e.Ctx.Sys.ComputeSubmitWait(cmd)
		cmd = e.Ctx.Sys.ComputeCmdBuff()
		e.Ctx.Sys.CmdResetBindVars(cmd, 0)
	}

	sinceFlush := uint32(0)
	for sweep := uint32(0); sweep < nSweeps; sweep++ {
		phase := sweep % 2
		e.Pipe.PushPhase(uintptr(cmd), phase)
		e.Pipe.Pipe.ComputeDispatch(cmd, int(WorkgroupCount(e.N)), 1, 1)
		shaderBarrier(cmd)
		sinceFlush++

		boundary := sweep >= burnIn && (sweep-burnIn)%period == 0 && uint32(len(samples)) < k
		if boundary || sinceFlush >= e.flushInterval {
			flush()
			sinceFlush = 0
		}
		if boundary {
			e.Ctx.Sys.Mem.SyncValueIndexFromGPU(0, "SpinSum", 0)
			s, err := e.Res.ReadSpinSum()
			if err != nil {
				return nil, fmt.Errorf("isinggpu: %w", err)
			}
			samples = append(samples, s)
		}
	}

	e.Ctx.Sys.ComputeCmdEnd(cmd)
	e.Ctx.Sys.ComputeSubmitWait(cmd)
	return samples, nil
}

