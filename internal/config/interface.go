package config

import "context"

// Loader is the interface for a format-specific profile loader.
type Loader interface {
	// Load reads the profile stored at path.
	Load(ctx context.Context, path string) (*Profile, error)
}
