// Package main is the entry point for the soccerstats CLI tool, which
// loads the European Soccer Dataset and serves derived statistics on the
// terminal and over HTTP.
package main

import "github.com/pable/go-soccer-stats/cmd"

func main() {
	cmd.Execute()
}
