package domain

import "time"

const (
	// DefaultConfigFile is the configuration file looked up in the working directory.
	DefaultConfigFile = "roam.yaml"

	// DefaultListen is the default listen address of the snapshot server.
	DefaultListen = ":3000"

	// DefaultDebounce is the quiet period after the last change event before a reload.
	DefaultDebounce = 100 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
