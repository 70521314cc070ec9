// Command stylekit exercises the css package from the command line: it merges
// transition declarations and runs scripts against parsed HTML pages.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
