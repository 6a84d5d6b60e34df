// Package misc keeps build time information about the program.
package misc

// Set by the linker: -ldflags "-X mdbi/misc.version=... -X mdbi/misc.gitHash=..."
var (
	version = "dev"
	gitHash = "unknown"
)

const appName = "mdbook-internal"

// MdbookVersion is the mdbook release the host protocol was written against.
// Hosts with a compatible (caret) version are accepted silently.
const MdbookVersion = "0.4.40"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
