package config

import "time"

// NATSConfig for connecting to the NATS JetStream broker
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	Name           string        `mapstructure:"name"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	PublishTimeout time.Duration `mapstructure:"publish_timeout"`
}

// StaleVersionPolicy decides what the reconciler does with an envelope
// whose version is lower than the stored sync version
type StaleVersionPolicy string

const (
	// StaleVersionApply applies envelopes in delivery order
	StaleVersionApply StaleVersionPolicy = "apply"

	// StaleVersionSkip acknowledges older envelopes without applying them
	StaleVersionSkip StaleVersionPolicy = "skip"
)

// SyncConfig for the replication consumer of a service
type SyncConfig struct {
	Entity  string `mapstructure:"entity"`
	Service string `mapstructure:"service"`

	Workers      int           `mapstructure:"workers"`
	FetchBatch   int           `mapstructure:"fetch_batch"`
	FetchMaxWait time.Duration `mapstructure:"fetch_max_wait"`

	MaxDeliver int             `mapstructure:"max_deliver"`
	AckWait    time.Duration   `mapstructure:"ack_wait"`
	Backoff    []time.Duration `mapstructure:"backoff"`

	StaleVersionPolicy StaleVersionPolicy `mapstructure:"stale_version_policy"`
}
