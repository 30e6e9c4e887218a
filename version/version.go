package version

import "fmt"

// Overridden at build time via -ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetCommit() string {
	return Commit
}

func GetBuildTime() string {
	return BuildTime
}

func GetFullVersion() string {
	return fmt.Sprintf("%s (%s) built at %s", Version, Commit, BuildTime)
}
