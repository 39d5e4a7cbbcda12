// Command hivemind runs the delivery-fleet simulation to completion and
// writes the final accounting report.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hivemind:", err)
		os.Exit(1)
	}
}
