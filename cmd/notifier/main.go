package main

import (
	"os"

	"sportapp/cmd"
	"sportapp/internal/components"
)

func main() {
	if err := cmd.Run(components.ServiceNotifier); err != nil {
		os.Exit(1)
	}
}
