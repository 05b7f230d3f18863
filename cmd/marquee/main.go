// Command marquee is the host-side simulator for the animation controller.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/marquee/cmd/marquee/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
