// Package version exposes build metadata for the vectype binary.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time via -ldflags.
var (
	VersionTag = "v0.4.0-dev"
	Commit     = "unknown"
	BuildTime  = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	Platform  string `json:"platform"`
	GoVersion string `json:"go_version"`
}

// Get returns the binary's build information.
func Get() Info {
	return Info{
		Version:   VersionTag,
		Commit:    Commit,
		BuildTime: BuildTime,
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		GoVersion: runtime.Version(),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("vectype %s (%s, built %s)", i.Version, i.Commit, i.BuildTime)
}
