package main

import (
	"fmt"
	"os"

	"github.com/Nusiq/custom-project-filter-src/internal/cli"
	"github.com/Nusiq/custom-project-filter-src/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
