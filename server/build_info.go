package server

// Build-time metadata variables set via LD flags
var (
	BuildServiceName    = "files-server"
	BuildServiceVersion = "dev"
)
