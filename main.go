package main

import (
	"os"

	"github.com/Shayan-Shome/Bus-Fleet-Maintenance-Tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
