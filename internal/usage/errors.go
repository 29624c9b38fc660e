// Package usage defines the sentinel errors the CLI driver uses to
// decide its exit code: usage errors and input errors are both fatal
// at startup (spec.md §7), but every other error the core packages
// return is surfaced as a diagnostic, never as a process exit.
package usage

import "errors"

// ErrUsage marks an unknown flag, a missing argument, or a non-numeric
// value where a numeric one was required.
var ErrUsage = errors.New("usage: invalid arguments")

// ErrInput marks a malformed stdin matrix: wrong length or
// non-numeric entries.
var ErrInput = errors.New("usage: malformed matrix input")
