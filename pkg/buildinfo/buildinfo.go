// Package buildinfo holds version information stamped in at build time:
//
//	go build -ldflags "-X github.com/matzehuels/tiledock/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/tiledock/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/tiledock/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/tiledock
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
