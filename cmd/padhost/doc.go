// Package main hosts the padhost CLI entrypoint and command graph.
//
// The Cobra-based command tree inspects and edits the controller options
// stored in the shared profile document: family enablement, per-family
// settings, and defaults reset. It also scaffolds and validates the
// application configuration. Configuration resolution, logging setup, and
// profile locking live in commandContext so subcommands only deal with
// options.
package main
