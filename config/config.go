package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type SchedulerConfig struct {
	Environment      string
	LogLevel         string
	Port             int
	Server           ServerConfig
	DefaultAlgorithm string
	AveragePrecision int
	StrictValidation bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", 9095)
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 5*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("scheduler.default_algorithm", "priority")
	v.SetDefault("scheduler.average_precision", 2)
	v.SetDefault("validation.strict", false)
}

// Load reads the configuration file at path, or config.yaml from the working directory
// when path is empty. A missing config.yaml is not an error; defaults apply.
// Environment variables prefixed with SCHEDULER_ override file values.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SCHEDULER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Environment: v.GetString("environment"),
		LogLevel:    v.GetString("log_level"),
		Port:        v.GetInt("port"),
		Server: ServerConfig{
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		},
		DefaultAlgorithm: v.GetString("scheduler.default_algorithm"),
		AveragePrecision: v.GetInt("scheduler.average_precision"),
		StrictValidation: v.GetBool("validation.strict"),
	}

	if err := config.IsValid(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c *SchedulerConfig) IsValid() error {
	if c.Port <= 0 || c.Port > 65535 {
		return goerrors.ErrValidation{
			Caller: "IsValid - SchedulerConfig",
			Issue: goerrors.ErrInvalidInput{
				InputName: "port",
			},
		}
	}

	if c.AveragePrecision < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - SchedulerConfig",
			Issue: goerrors.ErrNegativeInput{
				InputName: "scheduler.average_precision",
			},
		}
	}

	if c.Server.ShutdownTimeout <= 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - SchedulerConfig",
			Issue: goerrors.ErrInvalidInput{
				InputName: "server.shutdown_timeout",
			},
		}
	}

	return nil
}
