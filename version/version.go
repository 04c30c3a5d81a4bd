package version

import (
	gover "github.com/hashicorp/go-version"
)

var (
	// The full version string
	Version = "1.0.0"
	// GitCommit is set with --ldflags "-X github.com/bytom/lbraddr/version.GitCommit=$(git rev-parse HEAD)"
	GitCommit string
)

const revisionLen = 8

func init() {
	if len(GitCommit) >= revisionLen {
		Version += "+" + GitCommit[:revisionLen]
	}
}

// CompatibleWith checks whether a config file written by another release can
// be read by this one.
// RULES:
// | local |           other            |
// |   -   |             -              |
// | 1.x.x |     same major version.    |
func CompatibleWith(otherVerStr string) (bool, error) {
	localVersion, err := gover.NewVersion(Version)
	if err != nil {
		return false, err
	}
	otherVersion, err := gover.NewVersion(otherVerStr)
	if err != nil {
		return false, err
	}
	return (localVersion.Segments()[0] == otherVersion.Segments()[0]), nil
}
