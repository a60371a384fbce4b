// Package logging provides the structured logger used by fixcalc. Components
// depend on the Logger interface; the zerolog adapter is the only backend.
package logging
