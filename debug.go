package surrealql

import (
	"sync"

	"github.com/surrealdb/surrealql.go/pkg/logger"
)

var (
	debugMu  sync.RWMutex
	debugLog logger.Logger
)

// SetDebugLogger installs a logger that receives every rendered query at
// debug level. Passing nil disables query logging. Intended for
// development; rendering itself is unaffected.
func SetDebugLogger(l logger.Logger) {
	debugMu.Lock()
	defer debugMu.Unlock()
	debugLog = l
}

func debugLogger() logger.Logger {
	debugMu.RLock()
	defer debugMu.RUnlock()
	return debugLog
}
