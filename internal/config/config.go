// Package config holds the tunables of the text pipeline and loads them from
// maps, dotenv files and GOTEXT_* environment variables.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"GoText/internal/analysis"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "GOTEXT_"

// Config configures tokenization, sentence splitting, tagging and the
// document pipeline.
type Config struct {
	// MinNGram and MaxNGram bound the word n-gram lengths.
	MinNGram int `json:"min_ngram" mapstructure:"min_ngram" default:"1" validate:"min=1"`
	MaxNGram int `json:"max_ngram" mapstructure:"max_ngram" default:"3" validate:"gtefield=MinNGram"`

	// WindowSize and WindowMode shape the context attached to candidates.
	WindowSize int    `json:"window_size" mapstructure:"window_size" default:"3" validate:"min=0"`
	WindowMode string `json:"window_mode" mapstructure:"window_mode" default:"words" validate:"oneof=characters chars words"`

	// Language selects the sentence boundary rules.
	Language string `json:"language" mapstructure:"language" default:"en" validate:"oneof=en de"`

	// OnlyRealSentences drops headlines and fragments.
	OnlyRealSentences bool `json:"only_real_sentences" mapstructure:"only_real_sentences"`

	// Workers is the number of documents processed concurrently.
	Workers int `json:"workers" mapstructure:"workers" default:"4" validate:"min=1"`

	// HashBuckets is the dimension of the hashed n-gram vectors.
	HashBuckets int `json:"hash_buckets" mapstructure:"hash_buckets" default:"1048576" validate:"min=1"`

	Stem            bool `json:"stem" mapstructure:"stem"`
	RemoveStopwords bool `json:"remove_stopwords" mapstructure:"remove_stopwords"`

	LogLevel string `json:"log_level" mapstructure:"log_level" default:"info" validate:"oneof=debug info warn error"`

	// MatchTimeout bounds a single regular expression match. Zero disables
	// the limit.
	MatchTimeout time.Duration `json:"match_timeout" mapstructure:"match_timeout" default:"0s" validate:"gte=0"`
}

// keys lists the mapstructure keys of Config in declaration order.
var keys = []string{
	"min_ngram", "max_ngram", "window_size", "window_mode", "language",
	"only_real_sentences", "workers", "hash_buckets", "stem",
	"remove_stopwords", "log_level", "match_timeout",
}

var validate = validator.New()

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		panic(errors.Wrap(err, "failed to set defaults"))
	}
	return cfg
}

// Validate checks the ranges and enumerations of c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrapf(analysis.ErrInvalidArgument, "validation failed: %v", err)
	}
	return nil
}

// FromMap overlays m on the defaults. Values may be strings; durations use
// time.ParseDuration syntax. Unknown keys are rejected.
func FromMap(m map[string]any) (Config, error) {
	cfg := DefaultConfig()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "create decoder")
	}
	if err := dec.Decode(m); err != nil {
		return Config{}, errors.Wrapf(analysis.ErrInvalidArgument, "decode config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads envFile, if not empty, into the process environment and builds
// a Config from the GOTEXT_* variables. Variables already set take
// precedence over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, errors.Wrapf(err, "load env file %s", envFile)
		}
	}
	return FromMap(Environ())
}

// Environ collects the GOTEXT_* variables that name a Config key.
func Environ() map[string]any {
	m := make(map[string]any)
	for _, key := range keys {
		if v, ok := os.LookupEnv(EnvPrefix + strings.ToUpper(key)); ok {
			m[key] = v
		}
	}
	return m
}
