package version

// Version is the toolkit release tag. Overridable at build time:
//
//	go build -ldflags "-X annotools/internal/version.Version=v1.2.3"
var Version = "0.4.0"
