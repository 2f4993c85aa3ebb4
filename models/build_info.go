package models

import (
	"fmt"
	"strings"
)

const notAvailable = "N/A"

// BuildInfo is the version metadata injected with -ldflags at build time.
// Empty values are reported as "N/A".
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// String renders the startup banner lines.
func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", b.Version, b.Date, b.Commit)
}

func orNotAvailable(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvailable
	}
	return v
}
