// Package main is the entry point for the galaxycheck CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The galaxycheck tool validates
// collection requirement manifests, archive filenames, and metadata files
// for collection-based plugin repositories.
package main

import "github.com/ajxudir/galaxycheck/cmd"

// main initializes and runs the galaxycheck CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles subcommands like requirements, filename, and metadata.
func main() {
	cmd.Execute()
}
