package main

import (
	"os"

	"github.com/impa-jovem/impa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
