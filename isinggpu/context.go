// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isinggpu

import (
	"fmt"

	"github.com/goki/vgpu/vgpu"
)

// Context owns the vgpu instance, device, and compute system shared by
// every grid run in a process. It is configured once (spec.md 4.4: "the
// device and queue are acquired once per process, not per grid") and
// reused across the multi-grid auto-save modes.
type Context struct {
	GPU *vgpu.GPU
	Sys *vgpu.System

	// DeviceLocal and HostVisible are the fixed-budget bookkeeping of
	// PrepareBigDeviceLocalVulkanBufferAndMore and
	// PrepareBigHostVisibleVulkanBufferAndMore. They hold no Vulkan
	// memory: Resources' buffers are allocated by vgpu itself, and no
	// code path sub-allocates from these arenas.
	DeviceLocal *Arena
	HostVisible *Arena
}

// NewContext acquires a headless Vulkan compute device and creates the
// two arena records. It returns an error if no Vulkan-capable device is
// present; callers wrap it in an *ising.GPUFault with their own Stage.
func NewContext(name string) (*Context, error) {
	if err := vgpu.InitNoDisplay(); err != nil {
		return nil, fmt.Errorf("isinggpu: no Vulkan device available: %w", err)
	}

	gp := vgpu.NewComputeGPU()
	gp.Config(name)

	sys := gp.NewComputeSystem(name)

	ctx := &Context{
		GPU:         gp,
		Sys:         sys,
		DeviceLocal: NewArena("device-local", ArenaBytes, UsageStorageBuffer),
		HostVisible: NewArena("host-visible", ArenaBytes, UsageUniformBuffer|UsageTransferSrc|UsageTransferDst),
	}
	return ctx, nil
}

// Release tears down the compute system and GPU instance. Safe to call
// on a nil Context.
func (c *Context) Release() {
	if c == nil {
		return
	}
	if c.Sys != nil {
		c.Sys.Destroy()
	}
	if c.GPU != nil {
		c.GPU.Destroy()
	}
	vgpu.Terminate()
}

// ResetArenas rewinds both arenas to empty, used by NewEngineFunc when a
// multi-grid batch moves to the next grid size: the old grid's
// sub-buffers are no longer needed and the bump pointer starts over.
func (c *Context) ResetArenas() {
	c.DeviceLocal.Reset()
	c.HostVisible.Reset()
}
