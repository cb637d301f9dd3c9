package shop

// Config holds configuration for the merchant catalog connection.
type Config struct {
	// Name is the shop identifier recorded on sync runs.
	Name string `mapstructure:"name" default:"default"`
	// BaseURL is the admin API endpoint of the catalog platform.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:9090"`
	// Token is the admin API access token.
	Token string `mapstructure:"token" default:""`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// LocationTTLMinutes is how long the resolved primary location is reused.
	LocationTTLMinutes int `mapstructure:"location_ttl_minutes" default:"60"`
}
