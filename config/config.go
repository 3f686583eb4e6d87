package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config for the identity and replica services
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	NATS     NATSConfig     `mapstructure:"nats"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
}

// ServerListen for configuring host and port
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ServerConfig ...
type ServerConfig struct {
	HTTP ServerListen `mapstructure:"http"`
}

// String for host:port
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ListenString for listening on all interfaces
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	Environment string `mapstructure:"environment"`
}

// CacheConfig for the replica read path
type CacheConfig struct {
	Enabled            bool            `mapstructure:"enabled"`
	LocalSizeBytes     int             `mapstructure:"local_size_bytes"`
	LocalTTLSeconds    int             `mapstructure:"local_ttl_seconds"`
	RemoteTTLSeconds   uint32          `mapstructure:"remote_ttl_seconds"`
	WaitLeaseDurations []time.Duration `mapstructure:"wait_lease_durations"`
}

// Load config from config.yml in the working directory
func Load() Config {
	return loadConfigWithFilename("config", ".")
}

// LoadTestConfig from config.test.yml in the root directory of the module
func LoadTestConfig(rootDir string) Config {
	return loadConfigWithFilename("config.test", rootDir)
}

func loadConfigWithFilename(filename string, dir string) Config {
	vip := viper.New()

	vip.SetConfigName(filename)
	vip.SetConfigType("yml")
	vip.AddConfigPath(dir)
	vip.AddConfigPath(path.Join(dir, "config"))

	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	setDefaults(vip)

	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var cfg Config
	err = vip.Unmarshal(&cfg)
	if err != nil {
		panic(err)
	}
	return cfg
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.http.port", 8080)
	vip.SetDefault("log.level", "info")
	vip.SetDefault("log.format", "json")

	vip.SetDefault("mysql.max_open_conns", 20)
	vip.SetDefault("mysql.max_idle_conns", 5)

	vip.SetDefault("nats.url", "nats://localhost:4222")
	vip.SetDefault("nats.connect_timeout", 10*time.Second)
	vip.SetDefault("nats.publish_timeout", 5*time.Second)

	vip.SetDefault("sync.entity", "user")
	vip.SetDefault("sync.workers", 4)
	vip.SetDefault("sync.fetch_batch", 10)
	vip.SetDefault("sync.fetch_max_wait", 5*time.Second)
	vip.SetDefault("sync.max_deliver", 5)
	vip.SetDefault("sync.ack_wait", 30*time.Second)
	vip.SetDefault("sync.backoff", []string{"1s", "5s", "30s", "1m"})
	vip.SetDefault("sync.stale_version_policy", "apply")

	vip.SetDefault("cache.local_size_bytes", 8*1024*1024)
	vip.SetDefault("cache.local_ttl_seconds", 5)
	vip.SetDefault("cache.remote_ttl_seconds", 3600)
	vip.SetDefault("cache.wait_lease_durations", []string{"10ms", "20ms", "50ms"})
}
