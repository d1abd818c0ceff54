// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isinggpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaSuballocateAligns(t *testing.T) {
	a := NewArena("device-local", 1024, UsageStorageBuffer)
	first, err := a.Suballocate("spins", 10, 16, UsageStorageBuffer)
	require.NoError(t, err)
	assert.EqualValues(t, 0, first.Offset)

	second, err := a.Suballocate("samples", 10, 16, UsageStorageBuffer)
	require.NoError(t, err)
	assert.EqualValues(t, 16, second.Offset) // rounded up from 10 to the next multiple of 16
	assert.Zero(t, second.Offset%16)
}

func TestArenaSuballocateFitsWithinCapacity(t *testing.T) {
	a := NewArena("device-local", 100, UsageStorageBuffer)
	for _, alloc := range a.Allocations() {
		assert.True(t, alloc.Offset+alloc.Size <= a.Capacity)
	}
	_, err := a.Suballocate("one", 40, 8, UsageStorageBuffer)
	require.NoError(t, err)
	_, err = a.Suballocate("two", 40, 8, UsageStorageBuffer)
	require.NoError(t, err)
	for _, alloc := range a.Allocations() {
		assert.LessOrEqual(t, alloc.Offset+alloc.Size, a.Capacity)
	}
}

func TestArenaSaturationFails(t *testing.T) {
	a := NewArena("device-local", 64, UsageStorageBuffer)
	_, err := a.Suballocate("big", 64, 1, UsageStorageBuffer)
	require.NoError(t, err)
	_, err = a.Suballocate("overflow", 1, 1, UsageStorageBuffer)
	assert.Error(t, err)
}

func TestArenaUsageMismatchFails(t *testing.T) {
	a := NewArena("host-visible", 1024, UsageUniformBuffer|UsageTransferSrc)
	_, err := a.Suballocate("spins", 10, 4, UsageStorageBuffer)
	assert.Error(t, err)
}

func TestArenaLookup(t *testing.T) {
	a := NewArena("host-visible", 1024, UsageUniformBuffer)
	alloc, err := a.Suballocate("ubo", 32, 16, UsageUniformBuffer)
	require.NoError(t, err)

	got, ok := a.Lookup("ubo")
	require.True(t, ok)
	assert.Equal(t, alloc, got)

	_, ok = a.Lookup("missing")
	assert.False(t, ok)
}

func TestArenaReset(t *testing.T) {
	a := NewArena("device-local", 128, UsageStorageBuffer)
	_, err := a.Suballocate("x", 32, 8, UsageStorageBuffer)
	require.NoError(t, err)
	a.Reset()
	assert.EqualValues(t, 128, a.BytesLeft())
	assert.Empty(t, a.Allocations())
}

func TestArenaBytesLeft(t *testing.T) {
	a := NewArena("device-local", ArenaBytes, UsageStorageBuffer)
	assert.EqualValues(t, ArenaBytes, a.BytesLeft())
	_, err := a.Suballocate("spins", 1000, 4, UsageStorageBuffer)
	require.NoError(t, err)
	assert.EqualValues(t, ArenaBytes-1000, a.BytesLeft())
}
