// Package format holds display helpers shared by the CLI and REPL: durations,
// ETAs, rates, byte counts and progress bars.
package format
