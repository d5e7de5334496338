package main

import (
	"os"

	"sportapp/cmd"
	"sportapp/internal/components"
)

func main() {
	if err := cmd.Run(components.ServiceProvider); err != nil {
		os.Exit(1)
	}
}
