// Package textutil provides small, stateless text and list utilities.
//
// Each function is a leaf: none of them share state or call into one another
// beyond trivial helpers, and all of them are safe to call from multiple
// goroutines.
//
// Parsing and Lists:
//   - ParseUserData splits a "First Last user@host" line into its fields
//   - CompareLists diffs two filename listings into sorted added/removed sets
//   - ListDirectory reads the entry names of a directory for CompareLists
//
// Output Formatting:
//   - PrintLog, FprintLog and FormatLog render "{ts} [{pid}] [{LEVEL}] {msg}"
//   - Levels run TRACE, DEBUG, INFO, WARN, ERROR; out of range renders None
//
// Geometry:
//   - BiggestRectangle returns the first rectangle of maximum area
//
// Files and Words:
//   - FindInFile prints case-insensitive substring matches with line numbers
//   - ReadLongWords tokenizes a file into lowercase words above a length
//   - TopWords ranks word frequencies, ties kept in first-appearance order
//
// File readers return errors wrapping both ErrFileNotFound and the
// underlying fs error, so either can be matched with errors.Is.
package textutil
