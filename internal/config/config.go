// Package config loads tweetpipe settings from defaults, flags,
// TWEETPIPE_* environment variables, and an optional config file, in
// increasing order of precedence for env over file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/example/tweetpipe/core/thread"
)

type Config struct {
	MaxTweetLen int           `mapstructure:"max_tweet_len"`
	OutputDir   string        `mapstructure:"output_dir"`
	Twitter     TwitterConfig `mapstructure:"twitter"`
}

// TwitterConfig holds the OAuth1 user-context credentials and the API
// host. Credentials live in the environment or the config file; an
// empty set simply keeps the app in simulate mode.
type TwitterConfig struct {
	APIKey            string `mapstructure:"api_key"`
	APISecretKey      string `mapstructure:"api_secret_key"`
	AccessToken       string `mapstructure:"access_token"`
	AccessTokenSecret string `mapstructure:"access_token_secret"`
	BaseURL           string `mapstructure:"base_url"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		MaxTweetLen: thread.DefaultMaxLen,
		OutputDir:   "",
		Twitter: TwitterConfig{
			BaseURL: "https://api.twitter.com",
		},
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("max-tweet-len", defaults.MaxTweetLen, "Maximum tweet length including the i/N suffix")
	fs.String("output-dir", defaults.OutputDir, "Directory for saved threads (default: current directory)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := bindFlags(v, opts.Cmd.Flags()); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix("TWEETPIPE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tweetpipe"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.MaxTweetLen <= 0 {
		return Config{}, fmt.Errorf("max_tweet_len must be positive, got %d", cfg.MaxTweetLen)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("max_tweet_len", d.MaxTweetLen)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("twitter.api_key", d.Twitter.APIKey)
	v.SetDefault("twitter.api_secret_key", d.Twitter.APISecretKey)
	v.SetDefault("twitter.access_token", d.Twitter.AccessToken)
	v.SetDefault("twitter.access_token_secret", d.Twitter.AccessTokenSecret)
	v.SetDefault("twitter.base_url", d.Twitter.BaseURL)
}

// bindFlags wires each kebab-case flag onto its config key, so a flag,
// an env var, and a file entry all land in the same place. Viper only
// prefers a bound flag once it has actually been set, so unset flags
// never shadow file or env values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	bindings := map[string]string{
		"max_tweet_len": "max-tweet-len",
		"output_dir":    "output-dir",
	}
	for key, flagName := range bindings {
		flag := fs.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", flagName, err)
		}
	}
	return nil
}
