// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Idiomatic entrypoint for the Cobra CLI; all command wiring lives in
// cmd/root.go.
package main

import "github.com/emer/isingcumulant/cmd"

func main() {
	cmd.Execute()
}
