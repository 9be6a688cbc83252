package main

import (
	"os"

	"github.com/revisely/revisely/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
