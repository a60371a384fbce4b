package config

import "runtime"

// Worker resolution chain (highest priority first):
//   1. CLI flag (--workers)
//   2. Environment variable (FIXCALC_WORKERS)
//   3. Hardware estimation (this file)

// ApplyAdaptiveWorkers fills in the bench worker count when it was left at
// zero, preserving any explicit value.
func ApplyAdaptiveWorkers(cfg AppConfig) AppConfig {
	if cfg.Workers == 0 {
		cfg.Workers = EstimateOptimalWorkers(cfg.Words)
	}
	return cfg
}

// EstimateOptimalWorkers picks a concurrency level for bench checks without
// running benchmarks. Narrow scalars get fewer workers.
func EstimateOptimalWorkers(words int) int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU == 1:
		return 1
	case words <= 4:
		return min(numCPU, 4)
	case words <= 64:
		return min(numCPU, 8)
	default:
		return numCPU
	}
}
