// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emer/isingcumulant/ising"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchUnknownModeErrors(t *testing.T) {
	assert.Error(t, dispatch(99))
}

func TestRunSingleGridHardcodedCPU(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	p := ising.Parameters{
		L: 4, BetaStart: 1.0, BetaEnd: 0.8, BetaDecrement: 0.1,
		NumSweeps: 20, BurnIn: 0, SamplePeriod: 1, Backend: "CPU",
	}
	require.NoError(t, runSingleGridHardcoded(p))

	_, err = os.Stat("output0.txt")
	assert.NoError(t, err)
}

func TestSaveAndPlotResultWritesPNG(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(cwd)

	res := &ising.Result{
		Params: ising.Parameters{L: 8, Backend: "CPU"},
		Beta:   []float64{1.0, 0.9},
		BinderCumulant: []float64{0.6, 0.55},
	}
	require.NoError(t, saveResult(res, "out.txt"))
	require.NoError(t, plotResult(res))

	_, err = os.Stat(filepath.Join(dir, "binder_cumulant.png"))
	assert.NoError(t, err)
}
