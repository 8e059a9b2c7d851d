package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/termbridge/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// debugOutput is the writer for debug output (defaults to nil, meaning no output)
var debugOutput io.Writer

// debugMutex protects access to debug output
var debugMutex sync.Mutex

// SetOutput sets a custom writer for debug output.
// Pass nil to disable debug output entirely.
func SetOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
}

// Enable routes debug output to stderr. Used by the --verbose CLI flag.
func Enable() {
	SetOutput(os.Stderr)
}

// Enabled reports whether debug output is active.
func Enabled() bool {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	return debugOutput != nil || EnableDebug == "true"
}

// Logf writes a timestamped debug line when debug output is active.
func Logf(format string, args ...interface{}) {
	debugMutex.Lock()
	defer debugMutex.Unlock()

	w := debugOutput
	if w == nil {
		if EnableDebug != "true" {
			return
		}
		w = os.Stderr
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(w, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
}
