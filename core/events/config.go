package events

// Config holds configuration for the event publisher.
type Config struct {
	// Enabled turns publishing on.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Brokers is a comma separated list of kafka bootstrap addresses.
	Brokers []string `mapstructure:"brokers" default:"localhost:9092"`
	// Topic receives every reconciliation event.
	Topic string `mapstructure:"topic" default:"cdn.reconciliations"`
}
