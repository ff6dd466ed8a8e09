// Package config loads runtime settings from defaults, an optional
// config file and command-line flags, in that precedence order.
package config

import (
	"log"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the resolved runtime configuration.
type Config struct {
	Addr          string        `mapstructure:"addr"`
	Layout        string        `mapstructure:"layout"`
	TickInterval  time.Duration `mapstructure:"tick_interval"`
	AnalogEpsilon float64       `mapstructure:"analog_epsilon"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("layout", "dual-analog")
	v.SetDefault("tick_interval", 16*time.Millisecond)
	v.SetDefault("analog_epsilon", 0.01)
}

// Load resolves the configuration. args are the command-line arguments
// without the program name. A missing config file is not an error; a
// malformed one is. The returned viper instance can be handed to Watch.
func Load(args []string) (Config, *viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	flags := pflag.NewFlagSet("controlview", pflag.ContinueOnError)
	flags.String("addr", ":8080", "HTTP listen address")
	flags.String("layout", "dual-analog", "machine layout to sample")
	flags.Duration("tick_interval", 16*time.Millisecond, "sampling tick interval")
	flags.Float64("analog_epsilon", 0.01, "change threshold for analog values")
	configFile := flags.String("config", "", "config file path")
	if err := flags.Parse(args); err != nil {
		return Config{}, nil, err
	}
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, nil, err
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
	} else {
		v.SetConfigName("controlview")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/controlview")
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, nil, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, nil, err
	}
	return c, v, nil
}

// Watch re-reads the config file whenever it changes and hands the new
// configuration to onChange. Only file-backed settings are refreshed;
// flags keep their parsed values for the life of the process. Without a
// config file there is nothing to watch.
func Watch(v *viper.Viper, onChange func(Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Printf("Config file changed: %s", e.Name)
		var c Config
		if err := v.Unmarshal(&c); err != nil {
			log.Printf("Ignoring config change: %v", err)
			return
		}
		onChange(c)
	})
	v.WatchConfig()
}
