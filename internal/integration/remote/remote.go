package remote

import "time"

const (
	// Large datasets over slow links need room, but a stuck endpoint must not hang the run.
	timeout = 60 * time.Second
	// The analytics payload is a few megabytes at most.
	maxBodySize = 64 << 20
)
