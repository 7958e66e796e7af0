package main

import (
	"fmt"
	"os"

	"github.com/mymath/mymath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mymath:", err)
		os.Exit(1)
	}
}
