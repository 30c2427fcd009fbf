// Command felt renders felt scenes offscreen.
package main

import (
	"fmt"
	"os"

	"github.com/felt-ui/felt/cmd/felt/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
