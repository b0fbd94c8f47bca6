package main

import (
	"os"

	"github.com/cicalc/compound-calculator/cmd/compoundcalc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
