package main

import (
	"os"

	"github.com/arthur-debert/packlink/cmd/packlink"
)

func main() {
	rootCmd := packlink.NewRootCmd()
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		packlink.ReportError(cmd, err)
		os.Exit(1)
	}
}
