// SPDX-License-Identifier: MIT

package conv

import "go.uber.org/zap"

// logger receives conversion advisories. Nop by default: the library is
// silent unless the host application opts in.
var logger = zap.NewNop()

// SetLogger installs the zap logger used for conversion advisories and
// debug traces. Passing nil restores the silent default.
//
// Like the solver registry, the logger is write-once-then-read-only in
// spirit: install it during process initialization, before solves run
// concurrently.
func SetLogger(l *zap.Logger) {
	if l == nil {
		logger = zap.NewNop()

		return
	}
	logger = l
}

// zapOperand tags a log entry with the operand name supplied by the caller.
func zapOperand(label string) zap.Field { return zap.String("operand", label) }
