// SPDX-License-Identifier: MIT

//go:build !((linux || darwin) && (amd64 || arm64))

package qpsolve

import "github.com/katalvlaran/qpsolve/core"

// platformBackends: no platform-restricted adapters are available here.
func platformBackends() []core.Backend { return nil }
