package config

import "fmt"

// MemcacheConfig for the replica read cache
type MemcacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     uint16 `mapstructure:"port"`
	NumConns int    `mapstructure:"num_conns"`
}

// Addr ...
func (c MemcacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Conns returns at least one connection
func (c MemcacheConfig) Conns() int {
	if c.NumConns > 0 {
		return c.NumConns
	}
	return 1
}
