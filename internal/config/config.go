package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings that are not driven by command-line switches.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Upload UploadConfig `mapstructure:"upload"`
	WMI    WMIConfig    `mapstructure:"wmi"`
}

// LogConfig controls the debug log file.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// OutputConfig controls the JSON file sink.
type OutputConfig struct {
	FileName string `mapstructure:"file_name"`
}

// UploadConfig controls the HTTP sink. An empty URL disables it.
type UploadConfig struct {
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// WMIConfig controls the management service check before collection.
type WMIConfig struct {
	EnsureService bool          `mapstructure:"ensure_service"`
	ServiceName   string        `mapstructure:"service_name"`
	StartTimeout  time.Duration `mapstructure:"start_timeout"`
}

// Options are the run switches parsed from the command line.
type Options struct {
	DebugEnabled bool
	LogDir       string
	JSONEnabled  bool
	JSONDir      string
}

// DefaultFileName is the name of the JSON snapshot file.
const DefaultFileName = "computerInfo.json"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 0)
	v.SetDefault("log.max_backups", 0)
	v.SetDefault("output.file_name", DefaultFileName)
	v.SetDefault("upload.url", "")
	v.SetDefault("upload.timeout", "30s")
	v.SetDefault("wmi.ensure_service", true)
	v.SetDefault("wmi.service_name", "winmgmt")
	v.SetDefault("wmi.start_timeout", "10s")
}

// Load reads configuration from file and environment. With an empty cfgFile
// an optional computerinfo.yaml is looked up next to the working directory
// and the executable; a missing file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("computerinfo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if dir, err := ExeDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("COMPUTERINFO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Output.FileName == "" {
		cfg.Output.FileName = DefaultFileName
	}
	return &cfg, nil
}

// Default returns the configuration used when Load fails.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// ExeDir returns the directory holding the running executable.
func ExeDir() (string, error) {
	p, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot determine executable path: %w", err)
	}
	return filepath.Dir(p), nil
}
