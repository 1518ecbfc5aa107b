package main

import (
	"os"

	"github.com/jinyu/pindrill/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
