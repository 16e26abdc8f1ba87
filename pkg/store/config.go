package store

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config describes where and how the board is persisted.
type Config interface {
	Backend() string
	BasePath() string
	Key() string
	Redis() RedisConfig
	Log() LogConfig
}

// RedisConfig selects the redis server used by the redis backend.
type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file,omitempty"`
}

const (
	BackendDisk   = "disk"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"

	// DefaultKey is the versioned slot the board is stored under.
	DefaultKey = "study-board:v1"

	// ConfigPathEnv names a directory holding .studyboard.yaml.
	ConfigPathEnv = "STUDYBOARD_CONFIG_PATH"
)

// LoadConfig reads .studyboard.yaml from $STUDYBOARD_CONFIG_PATH or the
// working directory, with STUDYBOARD_* environment overrides. A .env file in
// the working directory is loaded first when present.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("backend", BackendDisk)
	v.SetDefault("path", "~/.studyboard")
	v.SetDefault("key", DefaultKey)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "warn")
	v.SetConfigName(".studyboard") // .yaml is implicit
	v.SetEnvPrefix("STUDYBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv(ConfigPathEnv); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		BackendName: strings.ToLower(strings.TrimSpace(v.GetString("backend"))),
		Path:        path,
		SlotKey:     v.GetString("key"),
		RedisConf: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		LogConf: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		Source: v.ConfigFileUsed(),
	}, nil
}

type fileConfig struct {
	BackendName string      `json:"backend"`
	Path        string      `json:"path"`
	SlotKey     string      `json:"key"`
	RedisConf   RedisConfig `json:"redis"`
	LogConf     LogConfig   `json:"log"`
	Source      string      `json:"source,omitempty"`
}

func (f *fileConfig) Backend() string {
	if f.BackendName == "" {
		return BackendDisk
	}
	return f.BackendName
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Key() string {
	if f.SlotKey == "" {
		return DefaultKey
	}
	return f.SlotKey
}

func (f *fileConfig) Redis() RedisConfig {
	return f.RedisConf
}

func (f *fileConfig) Log() LogConfig {
	return f.LogConf
}

// ConfigFile returns the config file that was read, if any.
func ConfigFile(cfg Config) string {
	if fc, ok := cfg.(*fileConfig); ok {
		return fc.Source
	}
	return ""
}
