package assert

import "github.com/oomph-ac/aimtrace/oerror"

// IsTrue panics with the formatted message if ok is false. It is only used for invariants that the
// surrounding code already guarantees.
func IsTrue(ok bool, message string, args ...any) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
