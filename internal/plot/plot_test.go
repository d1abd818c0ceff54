// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveWritesPNG(t *testing.T) {
	series := []Series{
		{GridLength: 20, Beta: []float64{1.0, 0.9, 0.8}, U4: []float64{0.66, 0.64, 0.6}},
		{GridLength: 40, Beta: []float64{1.0, 0.9, 0.8}, U4: []float64{0.665, 0.63, 0.58}},
	}
	path := filepath.Join(t.TempDir(), "binder.png")
	require.NoError(t, Save(path, "Binder cumulant vs beta", series))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestSaveMismatchedSeriesLengthErrors(t *testing.T) {
	series := []Series{
		{GridLength: 20, Beta: []float64{1.0, 0.9}, U4: []float64{0.66}},
	}
	path := filepath.Join(t.TempDir(), "binder.png")
	assert.Error(t, Save(path, "title", series))
}

func TestSaveWrapsPastPaletteLength(t *testing.T) {
	series := make([]Series, 7)
	for i := range series {
		series[i] = Series{GridLength: uint32(20 * (i + 1)), Beta: []float64{1.0}, U4: []float64{0.6}}
	}
	path := filepath.Join(t.TempDir(), "binder.png")
	assert.NoError(t, Save(path, "title", series))
}
