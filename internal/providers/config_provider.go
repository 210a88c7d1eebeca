package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/rantstats/rantstats-extension/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "RANTSTATS_LOG_LEVEL")
	viper.BindEnv("storage.filePath", "RANTSTATS_STORAGE_FILE")
	viper.BindEnv("storage.quotaBytes", "RANTSTATS_QUOTA_BYTES")
	viper.BindEnv("retention.sweepInterval", "RANTSTATS_SWEEP_INTERVAL")
	viper.BindEnv("cache.enabled", "RANTSTATS_CACHE_ENABLED")
	viper.BindEnv("cache.size", "RANTSTATS_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "RantStatsDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
