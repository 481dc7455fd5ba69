// Package config resolves process settings from flags, the environment and
// an optional .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

// KV drivers accepted by KVDriver.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int
	GRPCPort int

	TaxRate     decimal.Decimal
	CatalogPath string

	KVDriver    string
	KVPath      string
	DatabaseURL string
	CartKey     string
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

type setting struct {
	flag string
	env  string
	def  string
	help string
}

var settings = []setting{
	{"app-env", "APP_ENV", "dev", "deployment environment (dev, production)"},
	{"log-level", "LOG_LEVEL", "info", "log level (debug, info, warn, error)"},
	{"http-port", "HTTP_PORT", "8080", "HTTP listen port"},
	{"grpc-port", "GRPC_PORT", "50202", "gRPC health listen port"},
	{"tax-rate", "TAX_RATE", "0.05", "tax rate applied to the subtotal"},
	{"catalog", "CATALOG_PATH", "", "menu file (.yaml or .json); empty uses the built-in menu"},
	{"kv-driver", "KV_DRIVER", DriverFile, "cart storage: memory, file or postgres"},
	{"kv-path", "KV_PATH", "cart.json", "snapshot path for the file driver"},
	{"database-url", "DATABASE_URL", "", "Postgres DSN for the postgres driver"},
	{"cart-key", "CART_KEY", "cart_items", "storage key for the cart"},
}

// Load resolves the configuration. args excludes the program name.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("menucart", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	envFile := fs.String("env-file", ".env", "dotenv file, ignored in production")

	values := make(map[string]*string, len(settings))
	for _, s := range settings {
		values[s.env] = fs.String(s.flag, s.def, s.help)
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	dotenv, err := godotenv.Read(*envFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", *envFile, err)
	}
	// APP_ENV may come from the file itself; once it resolves to production
	// the file's other values are ignored.
	if resolve(fs, settings[0], values, dotenv) == "production" {
		dotenv = map[string]string{"APP_ENV": "production"}
	}

	get := func(env string) string {
		for _, s := range settings {
			if s.env == env {
				return resolve(fs, s, values, dotenv)
			}
		}
		return ""
	}

	cfg := Config{
		AppEnv:      get("APP_ENV"),
		LogLevel:    strings.ToLower(get("LOG_LEVEL")),
		CatalogPath: get("CATALOG_PATH"),
		KVDriver:    strings.ToLower(get("KV_DRIVER")),
		KVPath:      get("KV_PATH"),
		DatabaseURL: get("DATABASE_URL"),
		CartKey:     get("CART_KEY"),
	}

	if cfg.HTTPPort, err = parsePort("HTTP_PORT", get("HTTP_PORT")); err != nil {
		return Config{}, err
	}
	if cfg.GRPCPort, err = parsePort("GRPC_PORT", get("GRPC_PORT")); err != nil {
		return Config{}, err
	}
	if cfg.TaxRate, err = parseTaxRate(get("TAX_RATE")); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// resolve picks an explicit flag, then the environment, then the dotenv
// file, then the default.
func resolve(fs *pflag.FlagSet, s setting, values map[string]*string, dotenv map[string]string) string {
	if fs.Changed(s.flag) {
		return *values[s.env]
	}
	if v := os.Getenv(s.env); v != "" {
		return v
	}
	if v := dotenv[s.env]; v != "" {
		return v
	}
	return s.def
}

func parsePort(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 || n > 65535 {
		return 0, fmt.Errorf("%s: invalid port %q", key, v)
	}
	return n, nil
}

func parseTaxRate(v string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("TAX_RATE: %q is not a number", v)
	}
	if rate.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("TAX_RATE: %s cannot be negative", rate)
	}
	return rate, nil
}

func (c Config) validate() error {
	switch c.KVDriver {
	case DriverMemory:
	case DriverFile:
		if c.KVPath == "" {
			return errors.New("KV_PATH is required for the file driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("KV_DRIVER: unknown driver %q", c.KVDriver)
	}
	if c.CartKey == "" {
		return errors.New("CART_KEY cannot be empty")
	}
	return nil
}
