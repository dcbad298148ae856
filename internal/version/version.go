// internal/version/version.go
package version

// Version is the released tool version, bumped manually at tag time.
const Version = "0.2.0"
