package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/packlink/cmd/packlink"
	"github.com/arthur-debert/packlink/internal/version"
)

func main() {
	rootCmd := packlink.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "PACKLINK",
		Section: "1",
		Source:  "packlink " + version.Version,
		Manual:  "packlink manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
