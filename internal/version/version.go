package version

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/Nusiq/custom-project-filter-src/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/Nusiq/custom-project-filter-src/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/Nusiq/custom-project-filter-src/internal/version.Date={{.Date}}
)
