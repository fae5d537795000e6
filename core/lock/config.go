package lock

// Config holds configuration for the resource lock.
type Config struct {
	// Enabled turns locking on. When false reconciliations are not coordinated.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// URL is a redis:// URL or a host:port address.
	URL string `mapstructure:"url" default:"redis://localhost:6379/0"`
	// TTLSeconds bounds how long a crashed holder can block a resource.
	TTLSeconds int `mapstructure:"ttl_seconds" default:"120"`
	// Prefix is prepended to every lock key.
	Prefix string `mapstructure:"prefix" default:"cdn-manager:lock:"`
}
