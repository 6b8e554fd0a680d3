// SPDX-License-Identifier: MIT

// Package conv: one-shot advisory bookkeeping.
//
// The unit of deduplication is (call site, operand label): a caller that
// converts both P and G on the same line still learns about each operand
// once, while a solve loop hitting the same line a million times logs a
// single advisory.

package conv

import (
	"runtime"
	"sync"

	"go.uber.org/zap"
)

// advisoryKey identifies one advisory emission point.
type advisoryKey struct {
	pc    uintptr // program counter of the Ensure* call site
	label string  // operand name supplied by the caller ("P", "G", ...)
}

// seenAdvisories records which (call site, label) pairs have already
// warned. Concurrent solves share it safely; LoadOrStore makes the
// emit-once decision atomic.
var seenAdvisories sync.Map

// warnSparseConversion emits the dense→sparse advisory for label, at most
// once per call site. skip counts stack frames exactly like
// runtime.Caller: the Ensure* functions pass 2 (warnSparseConversion →
// Ensure* → user code).
func warnSparseConversion(label string, skip int) {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		pc = 0 // degenerate stack: still warn, collapsed onto one key
	}
	if _, loaded := seenAdvisories.LoadOrStore(advisoryKey{pc: pc, label: label}, struct{}{}); loaded {
		return
	}
	logger.Warn("converting dense matrix to sparse",
		zap.String("operand", label),
		zap.String("hint", "build the operand in CSC form to avoid the copy"),
	)
}

// resetAdvisories clears the dedup table. Test hook only.
func resetAdvisories() {
	seenAdvisories.Range(func(k, _ any) bool {
		seenAdvisories.Delete(k)

		return true
	})
}
