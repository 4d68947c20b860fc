// Package main is the entry point for the Covlens CLI.
package main

import "covlens.dev/pkg/covlens/cmd"

func main() {
	cmd.Execute()
}
