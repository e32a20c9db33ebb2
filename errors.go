// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package dd

import (
	"github.com/pkg/errors"
)

// Sentinel errors a caller can compare against with errors.Is, for the
// error kinds spec §7 names explicitly.
var (
	// ErrVarOutOfRange is returned by New for a negative variable count
	// and by NewReplacer for a variable index outside [0, Varnum). The
	// kernel operations do not return it: they record an out-of-range
	// index as the Manager's sticky error (see Error).
	ErrVarOutOfRange = errors.New("variable index out of range")

	// ErrStoreExhausted is returned by New when the shared terminal
	// cannot be placed at its reserved arena index. Node allocation
	// during kernel operations does not report exhaustion.
	ErrStoreExhausted = errors.New("node store exhausted")

	// ErrReplacerLengthMismatch is returned by NewReplacer when the old
	// and new variable slices have different lengths.
	ErrReplacerLengthMismatch = errors.New("replacer: mismatched slice lengths")

	// ErrReplacerDuplicateVar is returned by NewReplacer when the same
	// variable appears twice in oldvars.
	ErrReplacerDuplicateVar = errors.New("replacer: duplicate variable")
)

// seterror records err as the Manager's sticky error, chaining onto any
// error already present the way rudd's seterror does, so that a sequence
// of operations run after a failure keeps reporting the original cause.
func (m *Manager) seterror(err error) {
	if m.err != nil {
		m.err = errors.Wrap(m.err, err.Error())
		return
	}
	m.err = err
	if debugEnabled {
		debugLogf("manager error: %s", err)
	}
}

func (m *Manager) seterrorf(format string, args ...interface{}) {
	m.seterror(errors.Errorf(format, args...))
}

// Error returns the Manager's accumulated error message, or the empty
// string if there has been none.
func (m *Manager) Error() string {
	if m.err == nil {
		return ""
	}
	return m.err.Error()
}

// Errored reports whether any operation on this Manager has failed.
func (m *Manager) Errored() bool {
	return m.err != nil
}

// ClearError resets the Manager's sticky error so that subsequent
// operations are attempted again.
func (m *Manager) ClearError() {
	m.err = nil
}
