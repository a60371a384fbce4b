// Package orchestration runs the bench checks concurrently and aggregates
// their outcomes. It decouples business logic from presentation via the
// ProgressReporter and ResultPresenter interfaces.
package orchestration
