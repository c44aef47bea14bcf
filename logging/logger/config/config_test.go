package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestGetConfigDefaults(t *testing.T) {
	cfg := GetConfig(viper.New())
	assert.Equal(t, Default(), cfg)
}

func TestGetConfig(t *testing.T) {
	v := viper.New()
	v.Set("logger.level", 5)
	v.Set("logger.format", "json")
	v.Set("logger.output", "file")
	v.Set("logger.output_file", "/tmp/pager.log")

	cfg := GetConfig(v)
	assert.Equal(t, 5, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "file", cfg.Output)
	assert.Equal(t, "/tmp/pager.log", cfg.OutputFile)
}

func TestGetConfigPartial(t *testing.T) {
	v := viper.New()
	v.Set("logger.format", "json")

	cfg := GetConfig(v)
	assert.Equal(t, DefaultLevel, cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, DefaultOutput, cfg.Output)
}
