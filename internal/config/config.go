// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config declares the hardcoded run presets named in
// original_source/Control.cpp (IsingGPUHardcodedRun, IsingCPUHardcodedRun,
// and the multi-grid auto-save variants), loaded through viper so an
// operator can override any of them with a configs.yaml in the working
// directory or /etc/ising without recompiling. The load-and-plot file
// list is built from MultiGridLengths and is not read from configs.yaml.
package config

import (
	"fmt"

	"github.com/emer/isingcumulant/ising"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// MultiGridLengths are the five grid sizes swept by the multi-grid
// auto-save presets (modes 5/6) and loaded back by the hardcoded
// load-and-plot preset (mode 7), matching the L20GPU.txt..L100GPU.txt
// file list in original_source/Control.cpp.
var MultiGridLengths = []uint32{20, 40, 60, 80, 100}

// LoadAndPlotFiles returns the five result filenames mode 7 loads, one
// per entry of MultiGridLengths, suffixed with backend to match the
// original's "L<N>GPU.txt" naming (and this implementation's CPU
// equivalent, "L<N>CPU.txt", which the original never produced but a
// CPU-backed mode 6 now can).
func LoadAndPlotFiles(backend string) []string {
	files := make([]string, len(MultiGridLengths))
	for i, l := range MultiGridLengths {
		files[i] = fmt.Sprintf("L%d%s.txt", l, backend)
	}
	return files
}

// gpuHardcoded mirrors IsingGPUHardcodedRun's literal preset.
func gpuHardcoded() ising.Parameters {
	return ising.Parameters{
		L: 20, BetaStart: 0.50, BetaEnd: 0.35, BetaDecrement: 0.01,
		NumSweeps: 10_000, BurnIn: 100, SamplePeriod: 2, Backend: "GPU",
	}
}

// cpuHardcoded mirrors IsingCPUHardcodedRun's literal preset -- note the
// CPU preset runs ten times as many sweeps per temperature as the GPU
// one in the original, since the CPU path is fast enough at L=20 to
// afford it and the extra sweeps reduce sampling noise.
func cpuHardcoded() ising.Parameters {
	return ising.Parameters{
		L: 20, BetaStart: 0.50, BetaEnd: 0.35, BetaDecrement: 0.01,
		NumSweeps: 100_000, BurnIn: 100, SamplePeriod: 2, Backend: "CPU",
	}
}

// Presets is every named hardcoded configuration a run mode can select,
// keyed the way configs.yaml's top-level map keys it.
type Presets struct {
	GPUSingleGrid ising.Parameters   `mapstructure:"gpu_single_grid" yaml:"gpu_single_grid"`
	CPUSingleGrid ising.Parameters   `mapstructure:"cpu_single_grid" yaml:"cpu_single_grid"`
	MultiGrid     []ising.Parameters `mapstructure:"multi_grid" yaml:"multi_grid"`
}

// Load reads configs.yaml from any of viper's configured search paths
// (current directory and /etc/ising by convention), falling back to the
// literal defaults baked into this file -- matching the original's
// fully-hardcoded behavior when no config file is present.
func Load() (*Presets, error) {
	v := viper.New()
	v.SetConfigName("configs")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/ising")

	p := defaultPresets()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return p, nil
		}
		return nil, fmt.Errorf("config: failed to read configs.yaml: %w", err)
	}
	if err := v.Unmarshal(p); err != nil {
		return nil, fmt.Errorf("config: failed to parse configs.yaml: %w", err)
	}
	return p, nil
}

// DefaultConfigYAML renders the zero-config fallback presets as YAML,
// suitable for writing out as a starter configs.yaml an operator can
// then edit in place -- the same document shape viper.Unmarshal expects
// back in Load.
func DefaultConfigYAML() ([]byte, error) {
	out, err := yaml.Marshal(defaultPresets())
	if err != nil {
		return nil, fmt.Errorf("config: failed to render default config: %w", err)
	}
	return out, nil
}

// defaultPresets returns the zero-config fallback: the GPU and CPU
// single-grid hardcoded presets, plus a multi-grid preset sweeping
// MultiGridLengths at the GPU preset's beta schedule and sweep counts.
func defaultPresets() *Presets {
	multi := make([]ising.Parameters, len(MultiGridLengths))
	base := gpuHardcoded()
	for i, l := range MultiGridLengths {
		p := base
		p.L = l
		multi[i] = p
	}
	return &Presets{
		GPUSingleGrid: gpuHardcoded(),
		CPUSingleGrid: cpuHardcoded(),
		MultiGrid:     multi,
	}
}
