// Package cmd provides the command-line interface implementation for textkit.
//
// This package contains all the subcommand implementations for the textkit CLI
// tool. It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command, configuration loading and logger setup
//   - parse, log, find, words, top: text operations over lines and files
//   - diff, rect, seed, version: utility commands
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. Commands write their results to the
// command's output stream and their diagnostics through internal/logger.
package cmd
