package config

import (
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// IndexationSettings is the operator-editable part of the indexation batch:
// applications to skip and how often a long-running indexer wakes up.
type IndexationSettings struct {
	IgnoreAppNumbers []string      `mapstructure:"ignoreAppNumbers"`
	Interval         time.Duration `mapstructure:"interval"`
	BatchSize        int           `mapstructure:"batchSize"`
}

func DefaultIndexationSettings() IndexationSettings {
	return IndexationSettings{
		Interval:  5 * time.Minute,
		BatchSize: 0, // unlimited
	}
}

// IndexationSettingsHolder keeps the current settings and hot-reloads them
// when the config file changes on disk.
type IndexationSettingsHolder struct {
	current atomic.Value // holds IndexationSettings
}

func NewIndexationSettingsHolder() (*IndexationSettingsHolder, error) {
	v := viper.New()

	v.SetConfigName("indexation")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/sisindex/config")
	v.AddConfigPath("/etc/sisindex")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SISINDEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultIndexationSettings()
		v.SetDefault("indexation.ignoreAppNumbers", defaults.IgnoreAppNumbers)
		v.SetDefault("indexation.interval", defaults.Interval)
		v.SetDefault("indexation.batchSize", defaults.BatchSize)
	}

	holder := &IndexationSettingsHolder{}
	if err := holder.reload(v); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if err := holder.reload(v); err != nil {
			log.Printf("indexation config reload failed: %v", err)
		}
	})
	v.WatchConfig()

	return holder, nil
}

func (h *IndexationSettingsHolder) reload(v *viper.Viper) error {
	var settings IndexationSettings
	if err := v.UnmarshalKey("indexation", &settings); err != nil {
		return err
	}
	if settings.Interval <= 0 {
		settings.Interval = DefaultIndexationSettings().Interval
	}
	h.current.Store(settings)
	return nil
}

// Current returns the last successfully loaded settings.
func (h *IndexationSettingsHolder) Current() IndexationSettings {
	if v, ok := h.current.Load().(IndexationSettings); ok {
		return v
	}
	return DefaultIndexationSettings()
}
