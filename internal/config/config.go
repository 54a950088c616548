package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const EnvPrefix = "ORCAMENTOS"

type Config struct {
	App struct {
		Env string
	} `mapstructure:"app"`

	HTTP struct {
		Addr            string
		ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	} `mapstructure:"http"`

	Backend struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"backend"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Swagger struct {
		Enabled bool
	} `mapstructure:"swagger"`
}

func (c Config) IsDev() bool {
	return c.App.Env == "dev"
}

// Load reads configuration from defaults, an optional file and ORCAMENTOS_*
// environment variables (ORCAMENTOS_BACKEND_BASE_URL, ORCAMENTOS_HTTP_ADDR, ...).
// path may be empty.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return Config{}, errors.New("backend.base_url is required")
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "dev")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.shutdown_timeout", 5*time.Second)
	v.SetDefault("backend.base_url", "http://localhost:8081")
	v.SetDefault("backend.timeout", 10*time.Second)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("swagger.enabled", true)
}
