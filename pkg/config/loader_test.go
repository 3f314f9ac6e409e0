package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	type cfg struct {
		Port     int    `env:"TEST_LOADER_PORT" envDefault:"8080"`
		LogLevel string `env:"TEST_LOADER_LOG_LEVEL" envDefault:"info"`
	}

	var c cfg
	require.NoError(t, Load(&c))
	assert.Equal(t, 8080, c.Port)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	type cfg struct {
		Port    int      `env:"TEST_LOADER_PORT2" envDefault:"8080"`
		Brokers []string `env:"TEST_LOADER_BROKERS" envSeparator:","`
	}

	t.Setenv("TEST_LOADER_PORT2", "9090")
	t.Setenv("TEST_LOADER_BROKERS", "a:9092,b:9092")

	var c cfg
	require.NoError(t, Load(&c))
	assert.Equal(t, 9090, c.Port)
	assert.Equal(t, []string{"a:9092", "b:9092"}, c.Brokers)
}

func TestLoad_InvalidValue(t *testing.T) {
	type cfg struct {
		Port int `env:"TEST_LOADER_PORT3"`
	}

	t.Setenv("TEST_LOADER_PORT3", "not-a-number")

	var c cfg
	err := Load(&c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}
