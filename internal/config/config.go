package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"release-notify/internal/domain/model"
)

// Config contains runtime configuration values.
// Required inputs are pointers so an unset variable (nil) can be told apart
// from one the action exported empty.
type Config struct {
	App          *string `mapstructure:"app" validate:"required"`
	Environment  *string `mapstructure:"environment" validate:"required"`
	ReleaseURL   *string `mapstructure:"release_url" validate:"required"`
	ReleaseName  *string `mapstructure:"release_name" validate:"required"`
	ReleaseBody  string  `mapstructure:"release_body"`
	ReleaseActor *string `mapstructure:"release_actor" validate:"required"`
	GitHubRepo   *string `mapstructure:"github_repo" validate:"required"`
	Channel      *string `mapstructure:"channel" validate:"required"`
	ArgoCDURL    *string `mapstructure:"argocd_url" validate:"required"`

	LogLevel   string `mapstructure:"log_level"`
	OutputPath string `mapstructure:"github_output"`
}

const (
	envPrefix       = "INPUT"
	outputEnv       = "GITHUB_OUTPUT"
	defaultLogLevel = "info"
	defaultBody     = ""
)

var inputKeys = []string{
	"app",
	"environment",
	"release_url",
	"release_name",
	"release_body",
	"release_actor",
	"github_repo",
	"channel",
	"argocd_url",
	"log_level",
}

// Load builds a Config from the action's environment variables.
// Missing inputs are not an error here; see Validate.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AllowEmptyEnv(true)
	v.SetDefault("release_body", defaultBody)
	v.SetDefault("log_level", defaultLogLevel)

	for _, key := range inputKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", envName(key), err)
		}
	}
	if err := v.BindEnv("github_output", outputEnv); err != nil {
		return nil, fmt.Errorf("bind %s: %w", outputEnv, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode environment: %w", err)
	}

	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = defaultLogLevel
	}

	return cfg, nil
}

// Validate reports every required input that is unset as a single
// *model.MissingInputError. Empty values count as provided.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		key := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if key == "" {
			return field.Name
		}
		return envName(key)
	})

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate inputs: %w", err)
	}

	missing := &model.MissingInputError{}
	for _, fe := range fieldErrs {
		missing.Vars = append(missing.Vars, fe.Field())
	}
	return missing
}

// Release maps the inputs onto the domain release event. Unset inputs map to "".
func (c *Config) Release() model.Release {
	return model.Release{
		App:          deref(c.App),
		Environment:  deref(c.Environment),
		ReleaseURL:   deref(c.ReleaseURL),
		ReleaseName:  deref(c.ReleaseName),
		ReleaseBody:  c.ReleaseBody,
		ReleaseActor: deref(c.ReleaseActor),
		GitHubRepo:   deref(c.GitHubRepo),
		Channel:      deref(c.Channel),
		ArgoCDURL:    deref(c.ArgoCDURL),
	}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func envName(key string) string {
	return envPrefix + "_" + strings.ToUpper(key)
}
