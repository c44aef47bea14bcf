package config

import (
	"github.com/spf13/viper"
)

// Defaults applied when the logger section omits a key
const (
	DefaultLevel  = 4 // logrus.InfoLevel
	DefaultFormat = "text"
	DefaultOutput = "stdout"
)

// Config configuration struct
type Config struct {
	Level      int    `json:"level" yaml:"level"`
	Format     string `json:"format" yaml:"format"`
	Output     string `json:"output" yaml:"output"`
	OutputFile string `json:"output_file" yaml:"output_file"`
}

// Default returns the logger configuration used without a config file
func Default() *Config {
	return &Config{
		Level:  DefaultLevel,
		Format: DefaultFormat,
		Output: DefaultOutput,
	}
}

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	cfg := Default()

	if v.IsSet("logger.level") {
		cfg.Level = v.GetInt("logger.level")
	}
	if format := v.GetString("logger.format"); format != "" {
		cfg.Format = format
	}
	if output := v.GetString("logger.output"); output != "" {
		cfg.Output = output
	}
	cfg.OutputFile = v.GetString("logger.output_file")

	return cfg
}
