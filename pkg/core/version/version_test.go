package version

import (
	"regexp"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestRelease(t *testing.T) {
	assert.Regexp(t, semverRegex, Release)
}

func TestGet(t *testing.T) {
	info := Get()

	assert.Equal(t, Release, info.Version)
	assert.Equal(t, GitCommit, info.GitCommit)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	info := Info{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-10-17", GoVersion: "go1.24", Platform: "linux/amd64"}
	out := info.String()

	assert.Contains(t, out, "bizclock v1.2.3")
	assert.Contains(t, out, "Git Commit: abc123")
	assert.Contains(t, out, "OS/Arch:    linux/amd64")
}
