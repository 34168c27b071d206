package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

const (
	ShopModeWeighted = "weighted"
	ShopModePerTier  = "per-tier"
)

type Config struct {
	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	Storage       string `env:"STORAGE"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`
	JWTSecret     string `env:"JWT_SECRET"`
	CatalogFile   string `env:"CATALOG_FILE"`

	StartingBalance      int64  `env:"STARTING_BALANCE"       envDefault:"0"`
	DailyReward          int64  `env:"DAILY_REWARD"           envDefault:"10"`
	BonusMin             int64  `env:"BONUS_MIN"              envDefault:"1"`
	BonusMax             int64  `env:"BONUS_MAX"              envDefault:"6"`
	SharedRewardCooldown bool   `env:"SHARED_REWARD_COOLDOWN" envDefault:"false"`
	ShopSlots            int    `env:"SHOP_SLOTS"             envDefault:"9"`
	ShopMode             string `env:"SHOP_MODE"              envDefault:"weighted"`
	ShopRotationCron     string `env:"SHOP_ROTATION_CRON"     envDefault:"0 0 * * *"`
	HistoryLimit         uint   `env:"HISTORY_LIMIT"          envDefault:"10"`

	// ShopWeights и ShopPrices переопределяют таблицы магазина: "common:40,rare:15", "common:5-15".
	ShopWeights map[string]int    `env:"SHOP_WEIGHTS"`
	ShopPrices  map[string]string `env:"SHOP_PRICES"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			return errors.New("database DSN is not set")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown storage %q", c.Storage)
	}
	if c.JWTSecret == "" {
		return errors.New("jwt secret is not set")
	}
	if c.BonusMin <= 0 || c.BonusMax < c.BonusMin {
		return fmt.Errorf("invalid bonus range [%d, %d]", c.BonusMin, c.BonusMax)
	}
	switch c.ShopMode {
	case "", ShopModeWeighted, ShopModePerTier:
	default:
		return fmt.Errorf("unknown shop mode %q", c.ShopMode)
	}
	return nil
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.Storage, "s", StoragePostgres, "Storage: postgres or memory")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.JWTSecret, "j", "", "JWT secret key")
	flag.StringVar(&flagConfig.CatalogFile, "c", "", "YAML catalog imported on start")

	flag.Parse()
}

// mergeConfig значения из окружения имеют приоритет над флагами. Числовые настройки задаются только
// окружением.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	merged := *envConfig
	merged.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	merged.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	merged.Storage = defaultIfBlank(envConfig.Storage, flagsConfig.Storage)
	merged.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	merged.JWTSecret = defaultIfBlank(envConfig.JWTSecret, flagsConfig.JWTSecret)
	merged.CatalogFile = defaultIfBlank(envConfig.CatalogFile, flagsConfig.CatalogFile)
	return &merged
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
