package config

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestEnvDefaults() {
	var conf Config
	s.Require().NoError(env.ParseWithOptions(&conf, env.Options{Environment: map[string]string{}}))

	s.Equal(int64(10), conf.DailyReward)
	s.Equal(int64(1), conf.BonusMin)
	s.Equal(int64(6), conf.BonusMax)
	s.Equal(9, conf.ShopSlots)
	s.Equal("weighted", conf.ShopMode)
	s.Equal("0 0 * * *", conf.ShopRotationCron)
	s.Equal(uint(10), conf.HistoryLimit)
	s.False(conf.SharedRewardCooldown)
}

func (s *ConfigTestSuite) TestShopOverrides() {
	var conf Config
	s.Require().NoError(env.ParseWithOptions(&conf, env.Options{Environment: map[string]string{
		"SHOP_WEIGHTS": "common:30,limited_edition:2",
		"SHOP_PRICES":  "common:5-10,zenith:900-1000",
	}}))

	s.Equal(map[string]int{"common": 30, "limited_edition": 2}, conf.ShopWeights)
	s.Equal(map[string]string{"common": "5-10", "zenith": "900-1000"}, conf.ShopPrices)
}

func (s *ConfigTestSuite) TestEnvWinsOverFlags() {
	envConf := &Config{RunAddress: ":9000", SharedRewardCooldown: true, DailyReward: 25}
	flagsConf := &Config{
		RunAddress:    "localhost:8080",
		DatabaseDSN:   "postgres://flags",
		Storage:       StoragePostgres,
		MigrationsDir: "internal/db/migrations",
	}

	merged := mergeConfig(envConf, flagsConf)
	s.Equal(":9000", merged.RunAddress)
	s.Equal("postgres://flags", merged.DatabaseDSN)
	s.Equal(StoragePostgres, merged.Storage)
	s.Equal(int64(25), merged.DailyReward)
	s.True(merged.SharedRewardCooldown)
}

func (s *ConfigTestSuite) TestValidate() {
	valid := Config{Storage: StorageMemory, JWTSecret: "secret", BonusMin: 1, BonusMax: 6}
	s.NoError(valid.validate())

	cases := []struct {
		name string
		edit func(c *Config)
	}{
		{name: "postgres without dsn", edit: func(c *Config) { c.Storage = StoragePostgres }},
		{name: "unknown storage", edit: func(c *Config) { c.Storage = "sqlite" }},
		{name: "no jwt secret", edit: func(c *Config) { c.JWTSecret = "" }},
		{name: "inverted bonus range", edit: func(c *Config) { c.BonusMin, c.BonusMax = 6, 1 }},
		{name: "unknown shop mode", edit: func(c *Config) { c.ShopMode = "random" }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			conf := valid
			tc.edit(&conf)
			s.Error(conf.validate())
		})
	}
}
