package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	VendorModeSimulate = "simulate"
	VendorModeHTTP     = "http"
)

const (
	defaultFailureRate    = 0.05
	defaultVendorLatency  = 1500 * time.Millisecond
	defaultRequeryWorkers = 5
	defaultRequeryBatch   = 50
)

type Config struct {
	RunAddress        string        `env:"RUN_ADDRESS"`
	DatabaseDSN       string        `env:"DATABASE_URI"`
	MigrationsDir     string        `env:"MIGRATIONS_DIR"`
	JWTSecret         string        `env:"JWT_SECRET"`
	VendorMode        string        `env:"VENDOR_MODE"`
	VendorFailureRate float64       `env:"VENDOR_FAILURE_RATE"`
	VendorLatency     time.Duration `env:"VENDOR_LATENCY"`
	RequeryWorkers    uint          `env:"REQUERY_WORKERS"`
	RequeryBatch      uint          `env:"REQUERY_BATCH"`
	SeedFile          string        `env:"SEED_FILE"`
	LogLevel          string        `env:"LOG_LEVEL"`
}

// String конфиг без секретов, для логов.
func (c Config) String() string {
	return fmt.Sprintf(
		"run address: %s, migrations: %s, vendor: %s (failure rate %.2f, latency %s), requery: %d x %d, seed: %q, "+
			"log level: %q",
		c.RunAddress, c.MigrationsDir, c.VendorMode, c.VendorFailureRate, c.VendorLatency,
		c.RequeryWorkers, c.RequeryBatch, c.SeedFile, c.LogLevel,
	)
}

func LoadConfig() (*Config, error) {
	// .env необязателен.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}
	return load(os.Args[1:])
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

// load значения флагов служат значениями по умолчанию, переменные окружения их перекрывают.
func load(args []string) (*Config, error) {
	var conf Config
	if err := loadFlags(&conf, args); err != nil {
		return nil, err
	}

	if envParseErr := env.Parse(&conf); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if err := validate(&conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func loadFlags(flagConfig *Config, args []string) error {
	fset := flag.NewFlagSet("jadanpay", flag.ContinueOnError)

	fset.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	fset.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	fset.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	fset.StringVar(&flagConfig.JWTSecret, "j", "", "JWT signing secret")
	fset.StringVar(&flagConfig.VendorMode, "v", VendorModeSimulate, "Vendor client mode: simulate or http")
	fset.Float64Var(&flagConfig.VendorFailureRate, "vendor-failure-rate", defaultFailureRate,
		"Simulated vendor failure rate")
	fset.DurationVar(&flagConfig.VendorLatency, "vendor-latency", defaultVendorLatency, "Simulated vendor latency")
	fset.UintVar(&flagConfig.RequeryWorkers, "requery-workers", defaultRequeryWorkers,
		"Pending purchases requery workers")
	fset.UintVar(&flagConfig.RequeryBatch, "requery-batch", defaultRequeryBatch,
		"Pending purchases per requery iteration")
	fset.StringVar(&flagConfig.SeedFile, "seed", "", "Seed file, embedded seed is used when empty")
	fset.StringVar(&flagConfig.LogLevel, "log-level", "", "Log level, derived from GIN_MODE when empty")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %s", err.Error())
	}
	return nil
}

func validate(conf *Config) error {
	switch {
	case conf.DatabaseDSN == "":
		return errors.New("database DSN is not set")
	case conf.JWTSecret == "":
		return errors.New("JWT secret is not set")
	case conf.VendorMode != VendorModeSimulate && conf.VendorMode != VendorModeHTTP:
		return fmt.Errorf("unknown vendor mode `%s`", conf.VendorMode)
	case conf.VendorFailureRate < 0 || conf.VendorFailureRate > 1:
		return fmt.Errorf("vendor failure rate must be within [0, 1], got %v", conf.VendorFailureRate)
	case conf.RequeryWorkers == 0 || conf.RequeryBatch == 0:
		return errors.New("requery workers and batch must be positive")
	}
	if conf.LogLevel != "" {
		if _, err := logrus.ParseLevel(conf.LogLevel); err != nil {
			return fmt.Errorf("log level: %s", err.Error())
		}
	}
	return nil
}
