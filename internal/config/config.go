package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	DB      DBConfig      `mapstructure:"db"`
	Cron    CronConfig    `mapstructure:"cron"`
	Signals SignalsConfig `mapstructure:"signals"`
	Search  SearchConfig  `mapstructure:"search"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type CronConfig struct {
	Enabled       bool   `mapstructure:"enabled"`
	StatsSnapshot string `mapstructure:"stats_snapshot"`
}

// SignalsConfig holds the per-deployment query policies the read API applies
// uniformly: which statuses count as live, and the default page size.
type SignalsConfig struct {
	// LiveStatuses is the status allow-list for default queries. The strict
	// policy ["active"] matches the historical behavior of every access path;
	// the permissive ["created","pending","active"] variant can be selected
	// per deployment. Pick one, do not mix.
	LiveStatuses []string `mapstructure:"live_statuses"`
	DefaultLimit int      `mapstructure:"default_limit"`
	MaxLimit     int      `mapstructure:"max_limit"`
}

type SearchConfig struct {
	// SignalLimit caps /api/signals/search results (10-20 per deployment).
	SignalLimit int `mapstructure:"signal_limit"`
	// UniversalLimit caps each branch of the universal search fan-out.
	UniversalLimit int `mapstructure:"universal_limit"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.stats_snapshot", "@every 10m")
	v.SetDefault("signals.live_statuses", []string{"active"})
	v.SetDefault("signals.default_limit", 50)
	v.SetDefault("signals.max_limit", 500)
	v.SetDefault("search.signal_limit", 20)
	v.SetDefault("search.universal_limit", 10)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
