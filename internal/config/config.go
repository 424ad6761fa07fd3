// Package config holds the loader configuration shared by the browser
// build, which decodes it from JSON, and the jigger command, which reads
// it with viper.
package config

// Config holds all loader configuration.
type Config struct {
	Tail      TailConfig    `mapstructure:"tail" json:"tail"`
	ReadyHook string        `mapstructure:"ready_hook" json:"readyHook"` // global function called once all assets load
	UI        UIConfig      `mapstructure:"ui" json:"ui"`
	Startup   StartupConfig `mapstructure:"startup" json:"startup"`
	Report    ReportConfig  `mapstructure:"report" json:"report"`
	Logging   LoggingConfig `mapstructure:"logging" json:"logging"`
	Server    ServerConfig  `mapstructure:"server" json:"-"`
}

// TailConfig identifies the tail marker element.
type TailConfig struct {
	ID  string `mapstructure:"id" json:"id"`
	Tag string `mapstructure:"tag" json:"tag"`
}

// UIConfig names the elements toggled while a batch loads.
type UIConfig struct {
	Logo    string `mapstructure:"logo" json:"logo"`
	Wrapper string `mapstructure:"wrapper" json:"wrapper"`
}

// StartupConfig is the asset list bootstrapped when the page starts: the
// bootstrap asset first, then the batch once it has loaded.
type StartupConfig struct {
	Bootstrap AssetConfig `mapstructure:"bootstrap" json:"bootstrap"`
	Batch     []string    `mapstructure:"batch" json:"batch"`
}

type AssetConfig struct {
	Kind   string `mapstructure:"kind" json:"kind"`
	ID     string `mapstructure:"id" json:"id"`
	URL    string `mapstructure:"url" json:"url"`
	Tail   bool   `mapstructure:"tail" json:"tail"`
	Anchor string `mapstructure:"anchor" json:"anchor"`
}

// ReportConfig points the browser at the dev server's report socket.
type ReportConfig struct {
	URL string `mapstructure:"url" json:"url"`
}

type LoggingConfig struct {
	Level   string   `mapstructure:"level" json:"level"`
	Exclude []string `mapstructure:"exclude" json:"exclude"`
}

// ServerConfig is only used by the jigger command.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Dir  string `mapstructure:"dir"`
	DB   string `mapstructure:"db"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tail: TailConfig{
			ID:  "tail",
			Tag: "div",
		},
		ReadyHook: "AutoJiggerReady",
		UI: UIConfig{
			Logo:    "logo",
			Wrapper: "wrapper",
		},
		Startup: StartupConfig{
			Bootstrap: AssetConfig{
				Kind:   "js",
				ID:     "jquery",
				URL:    "https://cdnjs.cloudflare.com/ajax/libs/jquery/3.2.1/jquery.min.js",
				Tail:   true,
				Anchor: "last",
			},
			Batch: []string{
				"https://cdnjs.cloudflare.com/ajax/libs/twitter-bootstrap/4.0.0-beta/css/bootstrap.min.css",
				"https://cdnjs.cloudflare.com/ajax/libs/modernizr/2.8.3/modernizr.min.js",
				"https://cdnjs.cloudflare.com/ajax/libs/font-awesome/4.7.0/css/font-awesome.min.css",
				"https://cdnjs.cloudflare.com/ajax/libs/twitter-bootstrap/4.0.0-beta/js/bootstrap.min.js",
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Server: ServerConfig{
			Addr: "localhost:7777",
			Dir:  ".",
			DB:   "jigger.db",
		},
	}
}
