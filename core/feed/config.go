package feed

// Config holds configuration for the feed sources and index cache.
type Config struct {
	// RemoteURL is the HTTP endpoint of the exported feed CSV. Empty disables
	// the remote source.
	RemoteURL string `mapstructure:"remote_url" default:""`
	// Object is the object-storage key of the fallback feed CSV.
	Object string `mapstructure:"object" default:"feeds/distributor.csv"`
	// CacheTTLMinutes is how long a built index is reused before a rebuild.
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes" default:"60"`
}
