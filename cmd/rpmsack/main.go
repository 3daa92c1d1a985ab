// Command rpmsack is the CLI entry point for the package query/resolve
// engine.
package main

import "rpmsack/internal/cli"

func main() {
	cli.Execute()
}
