// Command sqmat applies square-matrix operations to matrices stored in
// text, YAML or JSON files.
//
// Usage:
//
//	sqmat [flags] transpose|neg|dim M
//	sqmat [flags] add|sub|mul A B
//	sqmat [flags] scale K M
//	sqmat [flags] mulvec M V
//
// A path of "-" reads standard input. See "sqmat --help" for flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
