package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/confmend/confmend/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/confmend/confmend/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/confmend/confmend/internal/version.Date={{.Date}}
)
