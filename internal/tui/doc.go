// Package tui implements the interactive bench dashboard started by
// "fixcalc -tui bench". It follows the bubbletea model: the orchestration
// layer reports through a bridge that turns progress and results into
// messages, and the model renders per-check progress bars, a status line
// and CPU and memory sparklines.
package tui
