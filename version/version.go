package version

// Version is the current release of the agenda CLI.
const Version = "1.0.0"
