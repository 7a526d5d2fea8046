package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"gomoku_exe/internal/engine"
)

type Config struct {
	ServerPort     string        `mapstructure:"SERVER_PORT"`
	GrpcPort       string        `mapstructure:"GRPC_PORT"`
	EngineGrpcAddr string        `mapstructure:"ENGINE_GRPC_ADDR"`
	SearchDepth    int           `mapstructure:"SEARCH_DEPTH"`
	UseMTD         bool          `mapstructure:"USE_MTD"`
	RedisUrl       string        `mapstructure:"REDIS_URL"`
	CacheTTL       time.Duration `mapstructure:"CACHE_TTL"`
	MongoUri       string        `mapstructure:"MONGO_URI"`
	MongoDatabase  string        `mapstructure:"MONGO_DATABASE"`
	IsLocalCors    bool          `mapstructure:"LOCAL_CORS"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	MatchRounds    int           `mapstructure:"MATCH_PLIES"`
}

var defaults = map[string]any{
	"SERVER_PORT":      "8080",
	"GRPC_PORT":        "8082",
	"ENGINE_GRPC_ADDR": "",
	"SEARCH_DEPTH":     5,
	"USE_MTD":          true,
	"REDIS_URL":        "",
	"CACHE_TTL":        "10m",
	"MONGO_URI":        "",
	"MONGO_DATABASE":   "gomoku",
	"LOCAL_CORS":       false,
	"LOG_LEVEL":        "info",
	"MATCH_PLIES":      30,
}

// Setup reads cfgPath when it exists and lets environment variables override
// every key. A missing file is not an error.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if cfgPath != "" {
		if _, err := os.Stat(cfgPath); err == nil {
			v.SetConfigFile(cfgPath)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("stat config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.SearchDepth < 1 || cfg.SearchDepth > engine.MaxDepth {
		return nil, fmt.Errorf("SEARCH_DEPTH must be between 1 and %d, got %d", engine.MaxDepth, cfg.SearchDepth)
	}
	return &cfg, nil
}
