package lwgeom

import (
	"log"
	"sync"
)

// NoticeFunc receives non-fatal diagnostic notices (e.g. a ring was closed
// automatically, a NaN vertex was stripped).
type NoticeFunc func(format string, args ...any)

var (
	handlerMu     sync.RWMutex
	noticeHandler NoticeFunc
	debugLogger   *log.Logger
)

// SetNoticeHandler installs the process-wide notice reporter. The core
// never calls it for hard errors (those are returned as error values per
// spec.md §9's "prefer explicit result types" note) — only for informational
// events a host may want to surface to a user.
func SetNoticeHandler(f NoticeFunc) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	noticeHandler = f
}

// SetDebugLogger installs the process-wide debug logger. Pass nil to
// disable debug logging (the default).
func SetDebugLogger(l *log.Logger) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	debugLogger = l
}

func notice(format string, args ...any) {
	handlerMu.RLock()
	f := noticeHandler
	handlerMu.RUnlock()
	if f != nil {
		f(format, args...)
	}
}

func debugf(level int, format string, args ...any) {
	handlerMu.RLock()
	l := debugLogger
	handlerMu.RUnlock()
	if l != nil {
		l.Printf(format, args...)
	}
}
