//go:build !js

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load reads jigger.yaml (or the file at path when set) over the defaults.
// JIGGER_ environment variables override file values, e.g.
// JIGGER_SERVER_ADDR. A missing config file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("jigger")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("JIGGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	// lists replace the defaults rather than merging into them
	if v.IsSet("startup.batch") {
		cfg.Startup.Batch = v.GetStringSlice("startup.batch")
	}
	if v.IsSet("logging.exclude") {
		cfg.Logging.Exclude = v.GetStringSlice("logging.exclude")
	}
	return cfg, nil
}

// bindEnv registers the nested keys so AutomaticEnv can see them; viper
// only consults the environment for keys it already knows.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"tail.id", "tail.tag", "ready_hook",
		"ui.logo", "ui.wrapper",
		"report.url",
		"logging.level",
		"server.addr", "server.dir", "server.db",
	} {
		v.BindEnv(key)
	}
}
