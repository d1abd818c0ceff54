// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validParams() Parameters {
	return Parameters{
		L:             20,
		BetaStart:     1.0,
		BetaEnd:       0.2,
		BetaDecrement: 0.1,
		NumSweeps:     10000,
		BurnIn:        1000,
		SamplePeriod:  10,
		Backend:       "CPU",
	}
}

func TestParametersValidateOK(t *testing.T) {
	p := validParams()
	assert.NoError(t, p.Validate())
}

func TestParametersValidateGridLength(t *testing.T) {
	p := validParams()
	p.L = 0
	assert.Error(t, p.Validate())
	p = validParams()
	p.L = MaxGridLength + 1
	assert.Error(t, p.Validate())
}

func TestParametersValidateBetaOrdering(t *testing.T) {
	p := validParams()
	p.BetaEnd = p.BetaStart
	assert.Error(t, p.Validate())
}

func TestParametersValidateBetaDecrementBounds(t *testing.T) {
	p := validParams()
	p.BetaDecrement = 0
	assert.Error(t, p.Validate())
	p = validParams()
	p.BetaDecrement = p.BetaStart - p.BetaEnd + 1
	assert.Error(t, p.Validate())
}

func TestParametersValidateSweepBounds(t *testing.T) {
	p := validParams()
	p.NumSweeps = MaxSweepsPerTemperature + 1
	assert.Error(t, p.Validate())
	p = validParams()
	p.BurnIn = p.NumSweeps
	assert.Error(t, p.Validate())
	p = validParams()
	p.SamplePeriod = 0
	assert.Error(t, p.Validate())
	p = validParams()
	p.SamplePeriod = p.NumSweeps - p.BurnIn + 1
	assert.Error(t, p.Validate())
}

func TestParametersValidateBackend(t *testing.T) {
	p := validParams()
	p.Backend = "TPU"
	assert.Error(t, p.Validate())
}

func TestParametersN(t *testing.T) {
	p := validParams()
	assert.EqualValues(t, 400, p.N())
}
