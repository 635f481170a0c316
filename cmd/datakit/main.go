package main

import (
	"os"

	"github.com/msto63/datakit/cmd/datakit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
