package cipher

import (
	"fmt"
	"os"
)

// Debug tracing: an env var checked once at package init, a tiny prefixed
// Fprintf helper, no-op entirely when unset.
var debugCube96 = os.Getenv("CUBE96_DEBUG") != ""

func logCube96(format string, args ...interface{}) {
	if debugCube96 {
		fmt.Fprintf(os.Stderr, "[cube96] "+format+"\n", args...)
	}
}
