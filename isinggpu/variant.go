// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isinggpu

// KernelVariant selects which compute shader the GPU engine dispatches,
// per spec.md 9 Design Note: the reference implementation ships two
// interchangeable kernels operating on the same lattice layout, one
// packing 32 spins per uint32 word (matching LatticeCPU exactly) and one
// using a full int32 per spin (simpler shader, 32x the storage).
type KernelVariant int

const (
	// OneBitPerSpin packs 32 spins per uint32 word, MSB-first, identical
	// to ising.LatticeCPU's layout. This is the default: it is the only
	// variant whose spin words can be compared byte-for-byte against the
	// CPU engine's Words slice.
	OneBitPerSpin KernelVariant = iota
	// OneIntPerSpin stores one int32 per spin. Useful for debugging a
	// new shader without also debugging bit-packing, at 32x the memory.
	OneIntPerSpin
)

// ShaderFile returns the SPIR-V file name NewPipeline reads from its
// shader directory for this variant (spec.md 4.8).
func (v KernelVariant) ShaderFile() string {
	switch v {
	case OneIntPerSpin:
		return "ising_1int.spv"
	default:
		return "ising_1bit.spv"
	}
}

// WordsPerLattice returns how many storage-buffer elements the spin
// buffer needs for an N-site lattice under this variant.
func (v KernelVariant) WordsPerLattice(n uint32) uint32 {
	if v == OneIntPerSpin {
		return n
	}
	return (n + wordBits - 1) / wordBits
}

func (v KernelVariant) String() string {
	switch v {
	case OneIntPerSpin:
		return "OneIntPerSpin"
	default:
		return "OneBitPerSpin"
	}
}

// wordBits mirrors ising.wordBits; isinggpu does not import the ising
// package's unexported constant so it is redeclared here.
const wordBits = 32
