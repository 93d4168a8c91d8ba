package config

import "time"

// Release builds stamp these via -ldflags; the About dialog shows them.
var (
	Version   string
	GitCommit string
	BuildTime string
)

func init() {
	// Running from source, nothing is stamped
	if Version == "" {
		Version = "dev"
	}
	if GitCommit == "" {
		GitCommit = "local"
	}
	if BuildTime == "" {
		BuildTime = time.Now().Format("2006-01-02 15:04:05")
	}
}
