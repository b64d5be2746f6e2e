package version

// Version is the release version reported by the system info endpoint
// and attached to traces. Overridden at build time via -ldflags.
var Version = "1.2.0"
