package main

import (
	"fmt"
	"os"

	"github.com/spiffcs/dtcalc/cmd"
)

// Version information, set via ldflags
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.New().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
