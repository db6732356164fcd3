//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

// Launch only reports that the server was not built in.
func Launch(output io.Writer) {
	fmt.Fprintln(output, "stats server not available (build with the statsview tag)")
}

// Available reports whether Launch starts a server.
func Available() bool { return false }
