package site

import (
	"fmt"
	"runtime"

	"github.com/cespare/xxhash/v2"
)

// Site identifies the source position at which a guard was constructed.
type Site struct {
	File string
	Line int
}

// Capture resolves the call site skip frames above Capture itself, where 0
// is the immediate caller. Returns a zero Site if the runtime cannot resolve
// the frame.
func Capture(skip int) Site {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Site{}
	}
	return Site{File: file, Line: line}
}

// Key returns a stable hash of the site, usable for grouping failures
// that originate from the same source position.
func (s Site) Key() uint64 {
	return xxhash.Sum64String(s.String())
}

func (s Site) String() string {
	return fmt.Sprintf("%s:%d", s.File, s.Line)
}
