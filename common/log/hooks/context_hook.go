// Package hooks provides logrus hooks shared by the trebuchet binaries.
package hooks

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// contextHook annotates every entry with the file:line of the log call
// site.
type contextHook struct{}

func NewContextHook() contextHook {
	return contextHook{}
}

func (hook contextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (hook contextHook) Fire(entry *logrus.Entry) error {
	pcs := make([]uintptr, 24)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if callSite(frame) {
			entry.Data["file:line"] = fmt.Sprintf("%s:%d", trimPath(frame.File), frame.Line)
			return nil
		}
		if !more {
			return nil
		}
	}
}

// callSite reports whether a frame is the logging caller rather than the
// hook itself or logrus internals.
func callSite(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "context_hook.go") {
		return false
	}
	if strings.Contains(frame.File, "sirupsen/logrus") {
		return false
	}
	return !strings.HasPrefix(frame.Function, "runtime.")
}

func trimPath(file string) string {
	if i := strings.Index(file, "trebuchet/"); i >= 0 {
		return file[i+len("trebuchet/"):]
	}
	return file
}
