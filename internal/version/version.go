package version

// Version is the termbridge release version. Override at build time with
// go build -ldflags "-X github.com/standardbeagle/termbridge/internal/version.Version=v1.2.3"
var Version = "0.3.0"
