// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isinggpu

import (
	"fmt"
	"unsafe"

	"github.com/emer/isingcumulant/ising"
	"github.com/goki/vgpu/vgpu"
)

// uniformData is the host-side mirror of sUniformBufferObject
// (original_source/Setup.h): the two cached transition probabilities
// plus the grid dimensions, rewritten once per beta-step.
type uniformData struct {
	TransitionProbability4 uint32
	TransitionProbability8 uint32
	IsingL                 uint32
	IsingN                 uint32
}

// Resources holds the one descriptor set's worth of named buffers for a
// single grid size: binding 0 spins, binding 1 random numbers, binding 2
// the spin-sum accumulator S (a single int32 the kernel updates with
// atomic add/sub on every flip), binding 3 the uniform (spec.md 4.7). It
// is built once per run series and reused across every beta-step in
// that series -- only the uniform buffer's contents and S itself change
// between steps.
type Resources struct {
	Variant KernelVariant
	L, N    uint32

	Set *vgpu.VarSet

	spinWords uint32
}

// NewResources configures the descriptor set for an L x L grid and
// uploads the initial all-up lattice.
func NewResources(ctx *Context, variant KernelVariant, l, n uint32) (*Resources, error) {
	if ctx.Sys == nil {
		return nil, fmt.Errorf("isinggpu: context has no compute system configured")
	}
	vars := ctx.Sys.Vars()
	set := vars.AddSet()

	spinWords := variant.WordsPerLattice(n)
	set.Add("Spins", vgpu.Uint32, int(spinWords), vgpu.Storage, vgpu.ComputeShader)
	set.Add("RandomNumbers", vgpu.Uint32, int(n), vgpu.Storage, vgpu.ComputeShader)
	set.Add("SpinSum", vgpu.Int32, 1, vgpu.Storage, vgpu.ComputeShader)
	set.AddStruct("Uniform", int(unsafe.Sizeof(uniformData{})), 1, vgpu.Uniform, vgpu.ComputeShader)

	set.ConfigVals(1)

	r := &Resources{
		Variant:   variant,
		L:         l,
		N:         n,
		Set:       set,
		spinWords: spinWords,
	}
	if err := r.Reset(); err != nil {
		return nil, err
	}
	if err := r.seedRandomNumbers(); err != nil {
		return nil, err
	}
	return r, nil
}

// seedRandomNumbers fills binding 1 with a host-generated xorshift32
// stream, one value per site, populated once at setup (spec.md 4.1: "the
// GPU kernel reads its per-site draw from the random-numbers SSB,
// populated once at setup with a host-side xorshift stream, and may
// re-mix it internally").
func (r *Resources) seedRandomNumbers() error {
	rng := ising.SeedFromClock()
	draws := make([]uint32, r.N)
	for i := range draws {
		draws[i] = rng.Next()
	}
	_, val, err := r.Set.ValByNameTry("RandomNumbers")
	if err != nil {
		return fmt.Errorf("isinggpu: RandomNumbers binding missing: %w", err)
	}
	val.CopyToBytes(unsafe.Pointer(&draws[0]))
	return nil
}

// allUpWords returns n spin-buffer elements in the all-up state, the
// GPU-side equivalent of LatticeCPU's initial all-up state: every bit set
// for OneBitPerSpin, +1 per element for OneIntPerSpin.
func allUpWords(variant KernelVariant, n uint32) []uint32 {
	up := ^uint32(0)
	if variant == OneIntPerSpin {
		up = 1
	}
	words := make([]uint32, n)
	for i := range words {
		words[i] = up
	}
	return words
}

// resetSpinsLocked copies words into the Spins storage buffer. Exported
// as Reset for engines implementing ising.Resetter (Quench mode).
func (r *Resources) resetSpinsLocked(words []uint32) error {
	_, val, err := r.Set.ValByNameTry("Spins")
	if err != nil {
		return fmt.Errorf("isinggpu: Spins binding missing: %w", err)
	}
	val.CopyToBytes(unsafe.Pointer(&words[0]))
	return nil
}

// Reset reinitializes the spin buffer to all-up and S back to N,
// mirroring LatticeCPU.Reset for Quench-mode runs; NewResources also
// uses it to set up the initial state.
func (r *Resources) Reset() error {
	if err := r.resetSpinsLocked(allUpWords(r.Variant, r.spinWords)); err != nil {
		return err
	}
	return r.writeSpinSum(int32(r.N))
}

// writeSpinSum overwrites binding 2 with s, used by Reset (S = N for an
// all-up lattice) since the kernel only ever adjusts S incrementally and
// never sets it from scratch.
func (r *Resources) writeSpinSum(s int32) error {
	_, val, err := r.Set.ValByNameTry("SpinSum")
	if err != nil {
		return fmt.Errorf("isinggpu: SpinSum binding missing: %w", err)
	}
	val.CopyToBytes(unsafe.Pointer(&s))
	return nil
}

// WriteUniform rewrites binding 3 with the transition probabilities for
// the current beta-step (spec.md 4.8 step 1).
func (r *Resources) WriteUniform(q4, q8 uint32) error {
	_, val, err := r.Set.ValByNameTry("Uniform")
	if err != nil {
		return fmt.Errorf("isinggpu: Uniform binding missing: %w", err)
	}
	u := uniformData{TransitionProbability4: q4, TransitionProbability8: q8, IsingL: r.L, IsingN: r.N}
	val.CopyToBytes(unsafe.Pointer(&u))
	return nil
}

// ReadSpinSum downloads the current value of S from binding 2, called
// by SweepEngine.Sweep at a sample boundary once the recorded command
// buffer has been submitted and waited on (in place of spec.md 4.8 step 3's "copy of 4 bytes from spin-sum SSB to
// sample-output buffer" -- here the "sample-output buffer" is this
// package's own Go slice rather than a second device-side buffer, since
// a single coherent int32 is cheap to sync on demand and needs no
// device-side copy command of its own).
func (r *Resources) ReadSpinSum() (int32, error) {
	_, val, err := r.Set.ValByNameTry("SpinSum")
	if err != nil {
		return 0, fmt.Errorf("isinggpu: SpinSum binding missing: %w", err)
	}
	var s int32
	val.CopyFromBytes(unsafe.Pointer(&s))
	return s, nil
}

// BindSet binds every value in this descriptor set to its dynamic slot,
// equivalent to the teacher's vars.BindDynValIdx calls in gpu.go.
func (r *Resources) BindSet(vars *vgpu.VarSet, setIdx int) {
	vars.BindDynValIdx(setIdx, "Spins", 0)
	vars.BindDynValIdx(setIdx, "RandomNumbers", 0)
	vars.BindDynValIdx(setIdx, "SpinSum", 0)
	vars.BindDynValIdx(setIdx, "Uniform", 0)
}
