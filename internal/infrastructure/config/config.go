package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Env        string     `mapstructure:"env"`
	HTTPServer HTTPServer `mapstructure:"http_server"`
	Database   Database   `mapstructure:"database"`
	Metrics    Metrics    `mapstructure:"metrics"`
}

type HTTPServer struct {
	Address        string        `mapstructure:"address"`
	Port           int           `mapstructure:"port"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type Database struct {
	Driver          string `mapstructure:"driver"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Host            string `mapstructure:"host"`
	Port            string `mapstructure:"port"`
	DbName          string `mapstructure:"db_name"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxConns        int32  `mapstructure:"max_conns"`
	ConnectAttempts uint   `mapstructure:"connect_attempts"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// DSN is the postgres connection string built from the database section.
func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.DbName,
	)
}

// Load reads config.yaml from the given paths (./config when none), then applies
// environment overrides such as DATABASE_HOST. A missing file is not an error.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Database.Driver != DriverPostgres && cfg.Database.Driver != DriverSQLite {
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.request_timeout", 10*time.Second)

	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "review-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "taskara")
	v.SetDefault("database.sqlite_path", "data/taskara.db")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.connect_attempts", 5)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
