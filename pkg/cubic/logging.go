package cubic

import (
	"log"
	"os"
)

// logger receives one trace line per extraction, the Go analogue of
// original_source's Timer + POLYVOX_LOG_TRACE calls bracketing
// extractCubicMeshCustom. Embedding callers that want extraction traces
// routed elsewhere can replace it with SetLogger.
var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger overrides the package's trace logger. Passing nil is a no-op
// and leaves the current logger in place.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	logger = l
}
