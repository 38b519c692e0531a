package main

import (
	"os"

	"github.com/danirb97/P4-Quiz/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
