package main

import (
	"os"

	"github.com/dmitrymomot/actionkit/cmd/actionkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
