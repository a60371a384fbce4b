// Package ui holds the terminal themes shared by the CLI presenter, the REPL
// and the TUI. Callers read colors through the Color* helpers so that a
// single switch (flag or NO_COLOR) turns every escape sequence off.
package ui
