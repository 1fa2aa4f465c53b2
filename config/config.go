package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	CafeService     ServerConfig   `yaml:"cafe_service"`
	EmployeeService ServerConfig   `yaml:"employee_service"`
	Database        DatabaseConfig `yaml:"database"`
	CORS            CORSConfig     `yaml:"cors"`
}

// ServerConfig holds the settings of one HTTP service.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
}

// CORSConfig lists the origins allowed to call the services from a browser.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	DSN                    string `yaml:"dsn"`
	Host                   string `yaml:"host"`
	Port                   int    `yaml:"port"`
	User                   string `yaml:"user"`
	Password               string `yaml:"password"`
	Name                   string `yaml:"name"`
	SSLMode                string `yaml:"sslmode"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	AutoMigrate            *bool  `yaml:"auto_migrate"`
	LogLevel               string `yaml:"log_level"`
}

// ConnString returns the DSN, assembling it from the individual fields when
// no explicit DSN was configured.
func (d DatabaseConfig) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

// ShouldAutoMigrate reports whether the schema is migrated on startup.
func (d DatabaseConfig) ShouldAutoMigrate() bool {
	return d.AutoMigrate == nil || *d.AutoMigrate
}

// Load reads the configuration from the given path and applies environment
// overrides. An empty path skips the file and uses defaults plus environment.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("could not read .env file: %v", err)
	}

	var cfg Config
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Database.DSN, "DATABASE_DSN")
	setString(&cfg.Database.User, "DATABASE_USER")
	setString(&cfg.Database.Password, "DATABASE_PASSWORD")
	setString(&cfg.Database.Host, "DATABASE_HOST")
	setString(&cfg.Database.Name, "DATABASE_NAME")

	for key, dst := range map[string]*int{
		"DATABASE_PORT":         &cfg.Database.Port,
		"CAFE_SERVICE_PORT":     &cfg.CafeService.Port,
		"EMPLOYEE_SERVICE_PORT": &cfg.EmployeeService.Port,
	} {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = n
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORS.AllowedOrigins = nil
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, origin)
			}
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.CafeService.Port <= 0 {
		cfg.CafeService.Port = 5000
	}
	if cfg.EmployeeService.Port <= 0 {
		cfg.EmployeeService.Port = 5001
	}
	for _, s := range []*ServerConfig{&cfg.CafeService, &cfg.EmployeeService} {
		if s.RateLimitPerSec <= 0 {
			s.RateLimitPerSec = 10
		}
		if s.RateLimitBurst <= 0 {
			s.RateLimitBurst = 5
		}
	}

	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	db := &cfg.Database
	if db.Host == "" {
		db.Host = "localhost"
	}
	if db.Port <= 0 {
		db.Port = 5432
	}
	if db.SSLMode == "" {
		db.SSLMode = "disable"
	}
	if db.MaxOpenConns <= 0 {
		db.MaxOpenConns = 10
	}
	if db.MaxIdleConns <= 0 {
		log.Printf("database.max_idle_conns is not set or invalid; defaulting to 5")
		db.MaxIdleConns = 5
	}
	if db.ConnMaxLifetimeMinutes <= 0 {
		db.ConnMaxLifetimeMinutes = 30
	}
	if db.LogLevel == "" {
		db.LogLevel = "warn"
	}
}
