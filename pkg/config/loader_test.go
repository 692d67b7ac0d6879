package config_test

import (
	"errors"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/config"
)

type TestConfigDefault struct {
	TestString string `env:"TEST_STRING_DEFAULT" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_DEFAULT" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_DEFAULT" envDefault:"true"`
}

type TestConfigSuccess struct {
	TestString string `env:"TEST_STRING_SUCCESS" envDefault:"default_value"`
	TestInt    int    `env:"TEST_INT_SUCCESS" envDefault:"42"`
	TestBool   bool   `env:"TEST_BOOL_SUCCESS" envDefault:"true"`
}

type TestConfigSingleton struct {
	TestString string `env:"TEST_STRING_SINGLETON" envDefault:"default_value"`
}

type TestConfigConcurrent struct {
	Workers int `env:"TEST_WORKERS_CONCURRENT" envDefault:"1"`
}

type TestConfigFile struct {
	Value string   `env:"RULEKIT_TEST_FILE_VALUE"`
	List  []string `env:"RULEKIT_TEST_LIST" envSeparator:","`
}

type RequiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("TEST_STRING_SUCCESS", "test_value")
	t.Setenv("TEST_INT_SUCCESS", "100")
	t.Setenv("TEST_BOOL_SUCCESS", "false")

	var cfg TestConfigSuccess
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.TestString)
	assert.Equal(t, 100, cfg.TestInt)
	assert.Equal(t, false, cfg.TestBool)
}

func TestLoad_DefaultValues(t *testing.T) {
	os.Unsetenv("TEST_STRING_DEFAULT")
	os.Unsetenv("TEST_INT_DEFAULT")
	os.Unsetenv("TEST_BOOL_DEFAULT")

	var cfg TestConfigDefault
	err := config.Load(&cfg)

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.TestString)
	assert.Equal(t, 42, cfg.TestInt)
	assert.Equal(t, true, cfg.TestBool)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")

	var cfg RequiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrParsingConfig))
}

func TestLoad_Singleton(t *testing.T) {
	t.Setenv("TEST_STRING_SINGLETON", "first_value")

	var firstConfig TestConfigSingleton
	require.NoError(t, config.Load(&firstConfig))

	t.Setenv("TEST_STRING_SINGLETON", "second_value")

	var secondConfig TestConfigSingleton
	require.NoError(t, config.Load(&secondConfig))
	assert.Equal(t, "first_value", secondConfig.TestString)

	config.ResetCache()

	var reloaded TestConfigSingleton
	require.NoError(t, config.Load(&reloaded))
	assert.Equal(t, "second_value", reloaded.TestString)
}

func TestLoad_Concurrent(t *testing.T) {
	t.Setenv("TEST_WORKERS_CONCURRENT", "7")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var cfg TestConfigConcurrent
			assert.NoError(t, config.Load(&cfg))
			assert.Equal(t, 7, cfg.Workers)
		}()
	}
	wg.Wait()
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *TestConfigSuccess
	err := config.Load(cfg)

	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	os.Unsetenv("RULEKIT_TEST_FILE_VALUE")
	os.Unsetenv("RULEKIT_TEST_LIST")
	t.Cleanup(func() {
		os.Unsetenv("RULEKIT_TEST_FILE_VALUE")
		os.Unsetenv("RULEKIT_TEST_LIST")
	})

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg TestConfigFile
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from_file", cfg.Value)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)

	assert.ErrorIs(t, config.LoadEnv("testdata/missing.env"), config.ErrLoadingEnvFile)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("REQUIRED_VALUE")
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg RequiredConfig
		config.MustLoad(&cfg)
	})
}
