package main

import (
	"os"

	"github.com/samdyer/revoir/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
