package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the document splitting service.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Server    ServerConfig    `mapstructure:"server"`
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Export    ExportConfig    `mapstructure:"export"`
	Upload    UploadConfig    `mapstructure:"upload"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address     string   `mapstructure:"address"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// TokenizerConfig selects the byte-pair encoding used for token counting.
type TokenizerConfig struct {
	Encoding string `mapstructure:"encoding"`
}

func (t TokenizerConfig) Validate() error {
	if strings.TrimSpace(t.Encoding) == "" {
		return fmt.Errorf("tokenizer.encoding is required")
	}
	return nil
}

// ExportConfig contains defaults for filesystem exports.
type ExportConfig struct {
	OutputPath string `mapstructure:"output_path"`
}

func (e ExportConfig) Validate() error {
	if strings.TrimSpace(e.OutputPath) == "" {
		return fmt.Errorf("export.output_path is required")
	}
	return nil
}

// UploadConfig constrains which files the upload endpoint accepts.
type UploadConfig struct {
	AllowedExtension string `mapstructure:"allowed_extension"`
}

func (u UploadConfig) Validate() error {
	if !strings.HasPrefix(u.AllowedExtension, ".") {
		return fmt.Errorf("upload.allowed_extension must start with a dot")
	}
	return nil
}

// LoadConfig loads config from file. When no config file exists the service
// runs on defaults plus SPLITTER_* environment overrides, so a bare binary
// with no configuration at all comes up listening on :8000.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("json")
	viper.SetDefault("general.debug", false)
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("server.address", ":8000")
	viper.SetDefault("server.cors_origins", []string{"*"})
	viper.SetDefault("tokenizer.encoding", "cl100k_base")
	viper.SetDefault("export.output_path", "output")
	viper.SetDefault("upload.allowed_extension", ".txt")

	if path == "" {
		viper.AddConfigPath("./config") // path to look for the config file in
		viper.AddConfigPath(".")        // optionally look for config in the working directory
		exe, _ := os.Executable()
		exeDir := filepath.Dir(exe)
		viper.AddConfigPath(exeDir)                      // bin/
		viper.AddConfigPath(filepath.Join(exeDir, "..")) // repo root
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("SPLITTER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match (SPLITTER_*)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	if err := config.Tokenizer.Validate(); err != nil {
		panic(err)
	}
	if err := config.Export.Validate(); err != nil {
		panic(err)
	}
	if err := config.Upload.Validate(); err != nil {
		panic(err)
	}
	return &config
}
