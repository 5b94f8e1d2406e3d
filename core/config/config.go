package config

import (
	"strings"
	"time"

	"slotsync/core/constants"

	"github.com/spf13/viper"
)

type Config struct {
	Env      string
	HTTP     HTTPConfig
	Redis    RedisConfig
	Postgres PostgresConfig
	Room     RoomConfig
	Cleanup  CleanupConfig
}

type HTTPConfig struct {
	Address string
}

type RedisConfig struct {
	// URL is a redis:// connection string; empty disables the Redis
	// provider and the service runs on the memory store alone.
	URL string
}

type PostgresConfig struct {
	// DSN enables the durable Postgres provider when set.
	DSN string
}

type RoomConfig struct {
	TTL       time.Duration
	StartHour int
	EndHour   int
	TopTimes  int
	// CodeOnExhaustion decides what happens when code generation keeps
	// colliding: "fail" rejects the request, "accept" proceeds with the
	// last generated code.
	CodeOnExhaustion string
}

type CleanupConfig struct {
	Enabled  bool
	Interval time.Duration
}

const (
	ExhaustionFail   = "fail"
	ExhaustionAccept = "accept"
)

// Load reads configuration from the environment with SLOTSYNC_ prefixed
// variables (e.g. SLOTSYNC_REDIS_URL) and applies defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SLOTSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "local")
	v.SetDefault("http.address", constants.DefaultHTTPAddress)
	v.SetDefault("redis.url", "")
	v.SetDefault("postgres.dsn", "")
	v.SetDefault("room.ttl", constants.RoomTTL)
	v.SetDefault("room.start_hour", constants.DefaultStartHour)
	v.SetDefault("room.end_hour", constants.DefaultEndHour)
	v.SetDefault("room.top_times", constants.DefaultTopTimes)
	v.SetDefault("room.code_on_exhaustion", ExhaustionFail)
	v.SetDefault("cleanup.enabled", false)
	v.SetDefault("cleanup.interval", time.Hour)

	cfg := &Config{
		Env: v.GetString("env"),
		HTTP: HTTPConfig{
			Address: v.GetString("http.address"),
		},
		Redis: RedisConfig{
			URL: v.GetString("redis.url"),
		},
		Postgres: PostgresConfig{
			DSN: v.GetString("postgres.dsn"),
		},
		Room: RoomConfig{
			TTL:              v.GetDuration("room.ttl"),
			StartHour:        v.GetInt("room.start_hour"),
			EndHour:          v.GetInt("room.end_hour"),
			TopTimes:         v.GetInt("room.top_times"),
			CodeOnExhaustion: v.GetString("room.code_on_exhaustion"),
		},
		Cleanup: CleanupConfig{
			Enabled:  v.GetBool("cleanup.enabled"),
			Interval: v.GetDuration("cleanup.interval"),
		},
	}

	return cfg, nil
}
