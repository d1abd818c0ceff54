// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isinggpu drives the checkerboard Metropolis sweep on a Vulkan
// compute device, mirroring ising.LatticeCPU.Sweep bit-for-bit so either
// engine can sit behind ising.Engine. The package is split into the
// bump-allocator (arena.go, pure Go, no GPU required), the device/queue
// setup (context.go), named buffer allocation (resources.go), pipeline
// and descriptor configuration (pipeline.go), and the dispatch loop
// (engine.go).
package isinggpu

import "fmt"

// ArenaBytes is the capacity of each of the two Vulkan buffers backing
// the GPU allocator, matching the original implementation's fixed
// 48,000,000-byte device-local and host-visible buffers (spec.md 4.4).
const ArenaBytes = 48_000_000

// UsageMask identifies which Vulkan buffer usage flags a named
// sub-allocation needs. The arena it is carved from must advertise all
// of them.
type UsageMask uint32

const (
	UsageStorageBuffer UsageMask = 1 << iota
	UsageUniformBuffer
	UsageTransferSrc
	UsageTransferDst
)

// Allocation names one sub-buffer carved out of an Arena: its byte
// offset and size within the arena's single backing VkDeviceMemory, and
// the usage it was requested with.
type Allocation struct {
	Name   string
	Offset uint64
	Size   uint64
	Usage  UsageMask
}

// Arena is a bump allocator over one big Vulkan buffer, mirroring
// cSetup::SuballocateBufferFromTheBig{DeviceLocal,HostVisible}VulkanBuffer
// (original_source/Setup.cpp). Real Vulkan memory requirements round a
// sub-allocation's size up to a device-reported alignment; since this
// package has no device to query before a GPUContext exists, Arena takes
// the alignment as a parameter and the caller (GPUContext) supplies the
// value vkGetBufferMemoryRequirements would have returned.
type Arena struct {
	Name        string
	Capacity    uint64
	UsageFlags  UsageMask
	nextByte    uint64
	allocations []Allocation
}

// NewArena returns an empty arena of the given capacity and usage mask.
// capacity is normally ArenaBytes; a smaller value is accepted so tests
// can exercise saturation without allocating 48MB per case.
func NewArena(name string, capacity uint64, usage UsageMask) *Arena {
	return &Arena{Name: name, Capacity: capacity, UsageFlags: usage}
}

// BytesLeft returns the number of bytes not yet bumped past, matching
// the original's bigDeviceLocalBufferBytesLeft bookkeeping field.
func (a *Arena) BytesLeft() uint64 {
	return a.Capacity - a.nextByte
}

// Suballocate carves out size bytes for a sub-buffer of the given usage,
// rounding the current offset up to alignment first, exactly as
// SuballocateBufferFromTheBigDeviceLocalVulkanBuffer does. It fails if
// usage is not a subset of the arena's usage mask or if the arena has
// insufficient remaining capacity once alignment padding is accounted
// for.
func (a *Arena) Suballocate(name string, size, alignment uint64, usage UsageMask) (Allocation, error) {
	if usage&a.UsageFlags != usage {
		return Allocation{}, fmt.Errorf("isinggpu: arena %q does not support usage %#x requested by %q", a.Name, usage, name)
	}
	if alignment == 0 {
		alignment = 1
	}
	offset := a.nextByte
	if rem := offset % alignment; rem != 0 {
		offset += alignment - rem
	}
	if offset+size > a.Capacity {
		return Allocation{}, fmt.Errorf("isinggpu: arena %q out of space: need %d bytes at offset %d, capacity %d", a.Name, size, offset, a.Capacity)
	}
	a.nextByte = offset + size
	alloc := Allocation{Name: name, Offset: offset, Size: size, Usage: usage}
	a.allocations = append(a.allocations, alloc)
	return alloc, nil
}

// Allocations returns every sub-allocation made so far, in allocation
// order.
func (a *Arena) Allocations() []Allocation {
	return a.allocations
}

// Lookup returns the allocation previously made under name, if any.
func (a *Arena) Lookup(name string) (Allocation, bool) {
	for _, alloc := range a.allocations {
		if alloc.Name == name {
			return alloc, true
		}
	}
	return Allocation{}, false
}

// Reset discards every sub-allocation and rewinds the bump pointer to
// zero, used between grids in a multi-grid run so each grid gets a
// fresh layout without recreating the underlying Vulkan buffer.
func (a *Arena) Reset() {
	a.nextByte = 0
	a.allocations = nil
}
