// Package main implements the pokeapi-gateway binary: an HTTP gateway that
// looks up Pokemon on PokeAPI and answers with a small, flat JSON document.
package main

import (
	"fmt"
	"os"
)

// main is the entry point for the gateway. All work happens in the cobra
// command tree; any returned error exits with status 1.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
