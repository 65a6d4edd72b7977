package main

import (
	"os"

	"go.llib.dev/listkit/cmd/listkit-tune/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
