// Package app wires application dependencies for the CLI.
//
// It builds the logger and the primitive service from Config and exposes
// them via App for commands to use.
package app
