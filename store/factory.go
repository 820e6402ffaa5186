package store

import (
	"fmt"
)

// NewSeedSource constructs a SeedSource by kind: "memory" or "file".
// For the file source, provide the file path in path; for memory, path is ignored
// and the demo shop is served.
func NewSeedSource(kind, path string) (SeedSource, error) {
	switch kind {
	case "memory", "mem":
		return NewMemorySeedSource(nil), nil
	case "file":
		if path == "" {
			return nil, fmt.Errorf("file path required for file seed")
		}
		return NewFileSeedSource(path)
	default:
		return nil, fmt.Errorf("unknown seed kind: %s", kind)
	}
}
