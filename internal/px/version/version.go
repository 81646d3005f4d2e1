package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version = "0.1.0"
	Commit  = "dev"
)

func Short() string {
	return Version
}

func Full() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
