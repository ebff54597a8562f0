package main

import (
	"os"

	"github.com/opencode-ai/themekit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
