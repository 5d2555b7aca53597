package decimate

import (
	"log"
	"os"
)

// logger receives one trace line per pass, mirroring pkg/cubic's logger.
var logger = log.New(os.Stderr, "", log.LstdFlags)

// SetLogger overrides the package's trace logger. Passing nil is a no-op.
func SetLogger(l *log.Logger) {
	if l == nil {
		return
	}
	logger = l
}
