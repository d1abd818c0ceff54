// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

import "fmt"

// ParameterError reports a parameter violation caught at intake (spec.md
// 7, taxonomy (a)). Callers are expected to fail fast on this error: no
// run is attempted.
type ParameterError struct {
	Field  string
	Detail string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("ising: invalid parameter %s: %s", e.Field, e.Detail)
}

// GPUFault reports a GPU setup or runtime failure (spec.md 7, taxonomy
// (b) and (c)). It wraps the underlying error returned by the isinggpu
// call layer so the message chain survives across the package boundary.
type GPUFault struct {
	Stage string
	Err   error
}

func (e *GPUFault) Error() string {
	return fmt.Sprintf("ising: gpu fault during %s: %v", e.Stage, e.Err)
}

func (e *GPUFault) Unwrap() error {
	return e.Err
}
