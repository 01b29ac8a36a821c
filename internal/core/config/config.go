package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name string
	Env  string
	HTTP HTTP
}

type Log struct {
	Level string
	JSON  bool
	// File enables rotated file output alongside stdout when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type JWT struct {
	Secret   string
	Issuer   string
	Audience string
	// Fixed validity window of issued tokens. Defaults to 6.
	TTLHours int
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Cache struct {
	Enabled bool
	TTLSec  int
}

type CORS struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

type Config struct {
	App   App
	Log   Log
	JWT   JWT
	DB    DB
	Redis Redis `mapstructure:"redis"`
	Cache Cache
	CORS  CORS `mapstructure:"cors"`
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = "./configs/config.local.yaml"
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		log.Fatalf("read config: %v", err)
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	if c.JWT.TTLHours <= 0 {
		c.JWT.TTLHours = 6
	}
	mustValidate(&c)
	return &c
}

// mustValidate aborts startup when the signing secrets or the
// connection string are absent. These are not per-request failures.
func mustValidate(c *Config) {
	var missing []string
	if c.JWT.Secret == "" {
		missing = append(missing, "jwt.secret")
	}
	if c.JWT.Issuer == "" {
		missing = append(missing, "jwt.issuer")
	}
	if c.JWT.Audience == "" {
		missing = append(missing, "jwt.audience")
	}
	if c.DB.DSN == "" {
		missing = append(missing, "db.dsn")
	}
	if len(missing) > 0 {
		log.Fatalf("config: missing required keys: %s", strings.Join(missing, ", "))
	}
}
