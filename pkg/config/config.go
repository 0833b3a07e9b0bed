/*
Package config manages TOML config for slovoserve.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/velikanov/slovoserve/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Lexicon LexiconConfig `toml:"lexicon"`
	CLI     CliConfig     `toml:"cli"`
}

// ServerConfig has IPC server related options.
type ServerConfig struct {
	MaxLimit    int `toml:"max_limit"`
	MaxQueryLen int `toml:"max_query_len"`
}

// LexiconConfig holds word list options.
type LexiconConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds interactive mode options.
type CliConfig struct {
	DefaultLimit int    `toml:"default_limit"`
	Sort         string `toml:"sort"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:    50,
			MaxQueryLen: 200,
		},
		Lexicon: LexiconConfig{
			Path: "data/lexicon_ru_5.jsonl.gz",
		},
		CLI: CliConfig{
			DefaultLimit: 50,
			Sort:         "freq",
		},
	}
}

// GetDefaultConfigPath returns the default path for config.toml,
// falling back to the working directory when no home dir is known.
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("failed to get home directory: %v", err)
		return "config.toml"
	}
	return filepath.Join(homeDir, ".config", "slovoserve", "config.toml")
}

// InitConfig loads config from file or creates a default one if
// missing. A broken or unwritable config never aborts startup; builtin
// defaults are used instead.
func InitConfig(configPath string) *Config {
	if configPath == "" {
		configPath = GetDefaultConfigPath()
	}

	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		log.Warnf("failed to create config directory for %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig()
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("failed to create default config at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig()
		}
		log.Debugf("created default config file at: %s", configPath)
		return config
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig()
	}
	log.Debugf("loaded config from: %s", configPath)
	return config
}

// LoadConfig loads from a TOML file, recovering valid sections from a
// partially broken file.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages whatever sections still parse.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if lexiconSection, ok := utils.ExtractSection(tempConfig, "lexicon"); ok {
		extractLexiconConfig(lexiconSection, &config.Lexicon)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_query_len"); ok {
		server.MaxQueryLen = val
	}
}

func extractLexiconConfig(data map[string]any, lexicon *LexiconConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		lexicon.Path = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractString(data, "sort"); ok {
		cli.Sort = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
