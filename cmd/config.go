package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/etnz/divsheet"
	"github.com/etnz/divsheet/eodhd"
	"github.com/etnz/divsheet/xlsx"
	"github.com/etnz/divsheet/yahoo"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the effective configuration of the application.
type Config struct {
	Workbook string      `mapstructure:"workbook"`
	Sheet    string      `mapstructure:"sheet"`
	Provider string      `mapstructure:"provider"`
	EODHD    EODHDConfig `mapstructure:"eodhd"`
	HTTP     HTTPConfig  `mapstructure:"http"`
}

// EODHDConfig configures the eodhd provider.
type EODHDConfig struct {
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
	Exchange string `mapstructure:"exchange"`
	Cache    string `mapstructure:"cache"`
}

// HTTPConfig configures the HTTP clients.
type HTTPConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// newViper returns a viper instance with the defaults and the environment bindings.
func newViper() (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("workbook", "portfolio.xlsx")
	v.SetDefault("sheet", xlsx.DefaultSheet)
	v.SetDefault("provider", "yahoo")
	v.SetDefault("eodhd.base_url", eodhd.DefaultBaseURL)
	v.SetDefault("eodhd.exchange", eodhd.DefaultExchange)
	v.SetDefault("eodhd.cache", filepath.Join(os.TempDir(), "divsheet"))
	v.SetDefault("http.timeout", 30*time.Second)

	v.SetEnvPrefix("DIVSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the plain variable is the one documented by eodhd.
	if err := v.BindEnv("eodhd.api_key", "DIVSHEET_EODHD_API_KEY", "EODHD_API_KEY"); err != nil {
		return nil, err
	}
	return v, nil
}

// loadConfig loads the configuration from .env, the configuration file and the environment.
// file is optional, without it divsheet.yaml is searched and may be missing.
func loadConfig(file string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("divsheet")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "divsheet"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading configuration: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &c, nil
}

// override sets *dst to value unless value is empty.
func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// newProvider returns the data provider selected by c.
func (c *Config) newProvider(log zerolog.Logger) (divsheet.Provider, error) {
	switch strings.ToLower(strings.TrimSpace(c.Provider)) {
	case "", "yahoo":
		return yahoo.New(log), nil
	case "eodhd":
		if c.EODHD.APIKey == "" {
			return nil, errors.New("EODHD API key is not set. Use eodhd.api_key or the EODHD_API_KEY environment variable")
		}
		p := eodhd.New(c.EODHD.APIKey)
		p.BaseURL = c.EODHD.BaseURL
		p.Exchange = c.EODHD.Exchange
		p.CacheDir = c.EODHD.Cache
		p.Client = &http.Client{Timeout: c.HTTP.Timeout}
		p.Log = log
		return p, nil
	}
	return nil, fmt.Errorf("unknown provider %q, want yahoo or eodhd", c.Provider)
}

// YAML returns c in YAML, API key masked.
func (c *Config) YAML() ([]byte, error) {
	type eodhdView struct {
		APIKey   string `yaml:"api_key"`
		BaseURL  string `yaml:"base_url"`
		Exchange string `yaml:"exchange"`
		Cache    string `yaml:"cache"`
	}
	type httpView struct {
		Timeout string `yaml:"timeout"`
	}
	view := struct {
		Workbook string    `yaml:"workbook"`
		Sheet    string    `yaml:"sheet"`
		Provider string    `yaml:"provider"`
		EODHD    eodhdView `yaml:"eodhd"`
		HTTP     httpView  `yaml:"http"`
	}{
		Workbook: c.Workbook,
		Sheet:    c.Sheet,
		Provider: c.Provider,
		EODHD: eodhdView{
			APIKey:   mask(c.EODHD.APIKey),
			BaseURL:  c.EODHD.BaseURL,
			Exchange: c.EODHD.Exchange,
			Cache:    c.EODHD.Cache,
		},
		HTTP: httpView{Timeout: c.HTTP.Timeout.String()},
	}
	return yaml.Marshal(view)
}

// mask hides all but the last 4 characters of a secret.
func mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", len(secret)-4) + secret[len(secret)-4:]
}

type configCmd struct{}

func (*configCmd) Name() string     { return "config" }
func (*configCmd) Synopsis() string { return "print the effective configuration" }
func (*configCmd) Usage() string {
	return `divsheet config

  Prints the configuration resulting from the .env file, the configuration file and the
  environment, in YAML. The API key is masked.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {}

func (c *configCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := cfg.YAML()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(string(out))
	return subcommands.ExitSuccess
}
