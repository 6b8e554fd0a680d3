// SPDX-License-Identifier: MIT
// Package conv: white-box test hooks. Kept in a dedicated file so the
// production surface stays clean; nothing here is part of the public API.

package conv

// ResetAdvisories clears the once-per-call-site dedup table between tests.
func ResetAdvisories() { resetAdvisories() }
