package errutil

import (
	"fmt"
)

const debug = false

func First(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func FatalIf(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("FATAL: %v", err))
}

// Fatalf aborts unconditionally. Reserved for broken internal invariants
// where continuing would return garbage.
func Fatalf(format string, msg ...any) {
	panic(fmt.Sprintf("FATAL: "+format, msg...))
}

func Bug(format string, msg ...any) {
	if debug {
		panic(fmt.Sprintf(format, msg...))
	}
}

func BugOn(cond bool, format string, msg ...any) {
	if debug && cond {
		Bug(format, msg...)
	}
}
