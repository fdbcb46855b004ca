package metrics

// Config holds configuration for the prometheus collectors.
type Config struct {
	// Namespace prefixes every metric name.
	Namespace string `mapstructure:"namespace" default:"inventory"`
}
