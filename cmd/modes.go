// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/emer/isingcumulant/internal/config"
	"github.com/emer/isingcumulant/internal/plot"
	"github.com/emer/isingcumulant/ising"
	"github.com/emer/isingcumulant/isinggpu"
	"github.com/sirupsen/logrus"
)

// Run modes, matching original_source/Control.h's eIsingRunCommands in
// the same order.
const (
	modeGPUUserInput = iota
	modeGPUHardcoded
	modeCPUUserInput
	modeCPUHardcoded
	modeLoadAndPlotUserInput
	modeGPUHardcodedMultiGrid
	modeCPUHardcodedMultiGrid
	modeLoadAndPlotHardcoded
)

func dispatch(mode int) error {
	switch mode {
	case modeGPUUserInput:
		return runSingleGridInteractive("GPU")
	case modeGPUHardcoded:
		p, err := config.Load()
		if err != nil {
			return err
		}
		return runSingleGridHardcoded(p.GPUSingleGrid)
	case modeCPUUserInput:
		return runSingleGridInteractive("CPU")
	case modeCPUHardcoded:
		p, err := config.Load()
		if err != nil {
			return err
		}
		return runSingleGridHardcoded(p.CPUSingleGrid)
	case modeLoadAndPlotUserInput:
		return runLoadAndPlotInteractive()
	case modeGPUHardcodedMultiGrid:
		p, err := config.Load()
		if err != nil {
			return err
		}
		return runMultiGridHardcoded(p.MultiGrid, "GPU")
	case modeCPUHardcodedMultiGrid:
		p, err := config.Load()
		if err != nil {
			return err
		}
		cpuGrid := make([]ising.Parameters, len(p.MultiGrid))
		for i, g := range p.MultiGrid {
			g.Backend = "CPU"
			cpuGrid[i] = g
		}
		return runMultiGridHardcoded(cpuGrid, "CPU")
	case modeLoadAndPlotHardcoded:
		return runLoadAndPlotHardcoded()
	default:
		return fmt.Errorf("cmd: unknown mode %d, expected 0-7", mode)
	}
}

func newEngine(p ising.Parameters) (ising.Engine, error) {
	if p.Backend == "CPU" {
		return ising.NewLatticeCPU(p.L)
	}
	ctx, err := isinggpu.NewContext("ising")
	if err != nil {
		return nil, &ising.GPUFault{Stage: "context setup", Err: err}
	}
	eng, err := isinggpu.NewSweepEngine(ctx, isinggpu.OneBitPerSpin, p.L, p.FlushInterval, flagShaderDir)
	if err != nil {
		ctx.Release()
		return nil, &ising.GPUFault{Stage: "engine setup", Err: err}
	}
	return eng, nil
}

func runSingleGrid(p ising.Parameters) (*ising.Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	eng, err := newEngine(p)
	if err != nil {
		return nil, err
	}
	driver := ising.NewRunDriver(eng, p)
	return driver.Run()
}

func runSingleGridHardcoded(p ising.Parameters) error {
	logrus.WithField("grid_length", p.L).Info("starting hardcoded single-grid run")
	res, err := runSingleGrid(p)
	if err != nil {
		return err
	}
	return saveResult(res, "output0.txt")
}

func runSingleGridInteractive(backend string) error {
	sc := bufio.NewScanner(os.Stdin)
	p, err := promptParameters(sc, os.Stdout, backend)
	if err != nil {
		return err
	}
	logrus.Info("The computation has started...")
	res, err := runSingleGrid(p)
	if err != nil {
		return err
	}
	logrus.WithField("seconds", res.ComputationTime.Seconds()).Info("The computation has finished.")

	if promptSaveOrNot(sc, os.Stdout) {
		filename, err := promptFilename(sc, os.Stdout, "Enter the filename: ", flagOutputFile)
		if err != nil {
			return err
		}
		if err := saveResult(res, filename); err != nil {
			logrus.WithError(err).Warn("failed to save result file")
		}
	}

	return plotResult(res)
}

func runMultiGridHardcoded(params []ising.Parameters, backend string) error {
	logrus.WithField("num_grids", len(params)).Info("starting hardcoded multi-grid auto-save run")
	engineFor := newEngine
	if backend == "GPU" {
		ctx, err := isinggpu.NewContext("ising")
		if err != nil {
			return &ising.GPUFault{Stage: "context setup", Err: err}
		}
		defer ctx.Release()
		engineFor = isinggpu.NewEngineFunc(ctx, isinggpu.OneBitPerSpin, flagShaderDir)
	}
	results, err := ising.RunMultiGrid(params, engineFor)
	for _, res := range results {
		if res == nil {
			continue
		}
		filename := fmt.Sprintf("L%d%s.txt", res.Params.L, backend)
		if serr := (ising.ResultStore{}).Save(filename, res); serr != nil {
			logrus.WithError(serr).Warn("failed to save result file")
		}
	}
	return err
}

func runLoadAndPlotInteractive() error {
	sc := bufio.NewScanner(os.Stdin)
	filename, err := promptFilename(sc, os.Stdout, "Enter the filename of the file to load: ", flagOutputFile)
	if err != nil {
		return err
	}
	res, gridLength, err := (ising.ResultStore{}).Load(filename)
	if err != nil {
		return err
	}
	return plot.Save("binder_cumulant.png", "Binder cumulant vs beta", []plot.Series{
		{GridLength: gridLength, Beta: res.Beta, U4: res.BinderCumulant},
	})
}

func runLoadAndPlotHardcoded() error {
	files := config.LoadAndPlotFiles("GPU")
	var series []plot.Series
	for _, f := range files {
		res, gridLength, err := (ising.ResultStore{}).Load(f)
		if err != nil {
			logrus.WithError(err).WithField("file", f).Warn("failed to open file")
			continue
		}
		series = append(series, plot.Series{GridLength: gridLength, Beta: res.Beta, U4: res.BinderCumulant})
	}
	return plot.Save("binder_cumulant.png", "Binder cumulant vs beta", series)
}

func saveResult(res *ising.Result, filename string) error {
	return (ising.ResultStore{}).Save(filename, res)
}

func plotResult(res *ising.Result) error {
	return plot.Save("binder_cumulant.png", fmt.Sprintf("Binder cumulant vs beta (%s)", res.Params.Backend), []plot.Series{
		{GridLength: res.Params.L, Beta: res.Beta, U4: res.BinderCumulant},
	})
}
