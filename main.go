// Package main is the entry point for the fixturegen CLI.
package main

import "fixturegen.dev/pkg/fixturegen/cmd"

func main() {
	cmd.Execute()
}
