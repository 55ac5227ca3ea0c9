// Package main provides the ringpipe CLI tool.
//
// Usage:
//
//	ringpipe [flags] < input > output
//
// ringpipe pumps stdin to stdout through a fixed-capacity ring buffer, with
// the producer and consumer running on independent goroutines. It exists
// mainly as a working example of the buffer's session protocol under real
// concurrency.
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/bytering/cmd/ringpipe/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
