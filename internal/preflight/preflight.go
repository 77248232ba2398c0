package preflight

import (
	"path/filepath"

	"padhost/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	// Profile directory (always checked)
	results = append(results, CheckDirectoryAccess("Profile directory", filepath.Dir(cfg.Paths.ProfilePath)))

	// Log directory (when configured)
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}

	results = append(results, CheckProfileDocument(cfg.Paths.ProfilePath))
	results = append(results, CheckProfileLock(cfg.Paths.ProfilePath))

	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
