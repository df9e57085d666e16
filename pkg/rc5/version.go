package rc5

// Version is populated at build time via
// -ldflags "-X github.com/coinbase/cb-rc5-go/pkg/rc5.Version=...".
var Version = "v0.0.0-in-progress"

// LibraryVersion returns the semantic version populated at build time. In
// development it defaults to v0.0.0-in-progress.
func LibraryVersion() string {
	return Version
}
