// pandafit is the terminal client: it renders the PandaFit pages as text,
// talking to the backend directly with a session kept on disk.
package main

import (
	"fmt"
	"os"
	// zone names must resolve on hosts without a zoneinfo database
	_ "time/tzdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
