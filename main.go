package main

import (
	"os"

	"github.com/longxinyang/bio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
