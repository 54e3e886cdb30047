package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/envp/stringswitch/switchconfig"
)

// statusTable is the built-in YAML switch table. Pass a .yaml path as the
// first argument to use a table from a file; remaining arguments are
// looked up against the table.
const statusTable = `
cases:
  active: running and serving traffic
  idle: waiting for work
  stopped: shut down cleanly
default: unknown status
`

func main() {
	args := os.Args[1:]

	var cfg *switchconfig.Config[string]
	var err error
	if len(args) > 0 && (strings.HasSuffix(args[0], ".yaml") || strings.HasSuffix(args[0], ".yml")) {
		cfg, err = switchconfig.Load[string](args[0])
		args = args[1:]
	} else {
		cfg, err = switchconfig.Parse[string]([]byte(statusTable))
	}
	if err != nil {
		panic(err)
	}

	sw, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	if len(args) == 0 {
		args = []string{"active", "rebooting"}
	}
	for _, status := range args {
		fmt.Printf("%s: %s\n", status, sw.Evaluate(status))
	}
}
