// Command multidigest prints the MD5, SHA-1, SHA-256 and
// SHA-512 digests of a file computed in a single read
// pass.
package main

import (
	"log/slog"
	"os"

	"github.com/byte4ever/multidigest/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}
