// Command cassowary-demo exercises the cassowary solver and layout package
// from the command line: solve prints a small interactively-edited
// constraint system, and layout prints an ASCII rendering of a Split.
package main

import "github.com/go-tableau/cassowary/cmd/cassowary-demo/internal/cli"

func main() {
	cli.Execute()
}
