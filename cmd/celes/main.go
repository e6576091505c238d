package main

import (
	"fmt"
	"os"

	"github.com/LainAmongYou/celes/cmd/celes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
