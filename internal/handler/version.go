package handler

import (
	"net/http"
	"os"
	"runtime"

	"github.com/osse101/PetFeed_Go/internal/domain"
)

// VersionInfo describes the running build and the feeding rules it applies
type VersionInfo struct {
	Version         string `json:"version"`
	GoVersion       string `json:"go_version"`
	GitCommit       string `json:"git_commit,omitempty"`
	BuildTime       string `json:"build_time,omitempty"`
	SecondsPerCycle int    `json:"seconds_per_cycle"`
}

// Set with -ldflags "-X github.com/osse101/PetFeed_Go/internal/handler.Version=..."
var (
	Version   = ""
	GitCommit = ""
	BuildTime = ""
)

// HandleVersion reports build information
func HandleVersion() http.HandlerFunc {
	info := VersionInfo{
		Version:         resolveVersion(),
		GoVersion:       runtime.Version(),
		GitCommit:       GitCommit,
		BuildTime:       BuildTime,
		SecondsPerCycle: domain.SecondsPerCycle,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// resolveVersion prefers the linked-in version, then VERSION from the environment
func resolveVersion() string {
	if Version != "" {
		return Version
	}
	if v := os.Getenv("VERSION"); v != "" {
		return v
	}
	return "dev"
}
