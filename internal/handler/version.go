package handler

import (
	"net/http"
	"os"
	"runtime"
)

// VersionInfo contains build information and the version of the served state
type VersionInfo struct {
	Version      string `json:"version"`
	GoVersion    string `json:"go_version"`
	BuildTime    string `json:"build_time,omitempty"`
	GitCommit    string `json:"git_commit,omitempty"`
	StateVersion uint64 `json:"state_version"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unset"
)

// Versioner reports the current state version
type Versioner interface {
	Version() uint64
}

// HandleVersion returns version information about the application
// @Summary Build and state version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(state Versioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:      getVersionInfo(),
			GoVersion:    runtime.Version(),
			BuildTime:    BuildTime,
			GitCommit:    GitCommit,
			StateVersion: state.Version(),
		})
	}
}

// getVersionInfo returns version from build-time variable or environment
func getVersionInfo() string {
	// Priority: build-time > environment > default
	if Version != "dev" && Version != "" {
		return Version
	}
	if envVersion := os.Getenv("VERSION"); envVersion != "" {
		return envVersion
	}
	return "dev"
}
