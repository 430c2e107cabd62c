// Package main provides the textkit command-line interface.
//
// textkit bundles small, independent text utilities: parsing user data
// lines, diffing directory listings, formatting log lines, picking the
// biggest rectangle, searching files and ranking word frequencies. The
// operations themselves live in package textutil; this binary exposes each
// of them as a subcommand:
//   - parse, log, find, words, top: text operations
//   - diff, rect, seed, version: utility commands
package main
