package config

import (
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "AVAILABILITY"

// GitHubEnvVar names the file GitHub Actions reads exported variables from.
const GitHubEnvVar = "GITHUB_ENV"

var envNamePattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

type InputConfig struct {
	Path  string `mapstructure:"path"`
	Sheet string `mapstructure:"sheet"`
}

type CheckConfig struct {
	Attempts       int           `mapstructure:"attempts"`
	RetryDelay     time.Duration `mapstructure:"retry_delay"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	UserAgent      string        `mapstructure:"user_agent"`
}

type ReportConfig struct {
	FailureFile string `mapstructure:"failure_file"`
	EnvFile     string `mapstructure:"env_file"`
	EnvPrefix   string `mapstructure:"env_prefix"`
	YAMLFile    string `mapstructure:"yaml_file"`
}

type LoggingConfig struct {
	Level     string `mapstructure:"level"`
	AddSource bool   `mapstructure:"add_source"`
}

type Config struct {
	Environment string        `mapstructure:"environment"`
	Input       InputConfig   `mapstructure:"input"`
	Check       CheckConfig   `mapstructure:"check"`
	Report      ReportConfig  `mapstructure:"report"`
	Logging     LoggingConfig `mapstructure:"logging"`
}

// flagKeys maps CLI flag names onto config keys.
var flagKeys = map[string]string{
	"input":        "input.path",
	"sheet":        "input.sheet",
	"attempts":     "check.attempts",
	"retry-delay":  "check.retry_delay",
	"failure-file": "report.failure_file",
	"env-file":     "report.env_file",
	"yaml-report":  "report.yaml_file",
	"log-level":    "logging.level",
	"environment":  "environment",
}

// RegisterFlags adds the flags Load understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (default ./config/availability.yaml or ./availability.yaml)")
	fs.StringP("input", "i", "data/urls.xlsx", "spreadsheet, CSV, HTML or text file listing the URLs")
	fs.String("sheet", "", "worksheet to read (default first sheet)")
	fs.Int("attempts", 3, "GET attempts per URL")
	fs.Duration("retry-delay", 2*time.Second, "pause between attempts (0 retries immediately)")
	fs.String("failure-file", "failure-details.txt", "file receiving the failure details (empty disables)")
	fs.String("env-file", "", "env file receiving exported CI variables (default $GITHUB_ENV)")
	fs.String("yaml-report", "", "file receiving every check result as YAML")
	fs.String("log-level", LogLevelInfo, "debug, info, warn or error")
	fs.String("environment", EnvDev, "dev, staging or prod")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", EnvDev)
	v.SetDefault("input.path", "data/urls.xlsx")
	v.SetDefault("input.sheet", "")
	v.SetDefault("check.attempts", 3)
	v.SetDefault("check.retry_delay", "2s")
	v.SetDefault("check.connect_timeout", "10s")
	v.SetDefault("check.request_timeout", "10s")
	v.SetDefault("check.user_agent", "availability-checker")
	v.SetDefault("report.failure_file", "failure-details.txt")
	v.SetDefault("report.env_file", "")
	v.SetDefault("report.env_prefix", EnvPrefix)
	v.SetDefault("report.yaml_file", "")
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.add_source", false)
}

// Load resolves the configuration from defaults, an optional config file,
// AVAILABILITY_* environment variables and flags, in increasing precedence.
// fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	configFile := ""
	if fs != nil {
		if f := fs.Lookup("config"); f != nil {
			configFile = f.Value.String()
		}
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("availability")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			slog.Error("failed to read config file", slog.String("error", err.Error()))
			return nil, err
		}
		slog.Debug("config file not found, using defaults and environment variables")
	} else {
		slog.Debug("loaded config file", slog.String("file", v.ConfigFileUsed()))
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		slog.Error("failed to unmarshal config", slog.String("error", err.Error()))
		return nil, err
	}

	if cfg.Report.EnvFile == "" {
		cfg.Report.EnvFile = os.Getenv(GitHubEnvVar)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Environment,
			validation.Required,
			validation.In(EnvDev, EnvStaging, EnvProd),
		),
		validation.Field(&c.Input,
			validation.By(func(value interface{}) error {
				ic, ok := value.(InputConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be an InputConfig")
				}
				return validation.ValidateStruct(&ic,
					validation.Field(&ic.Path, validation.Required),
				)
			}),
		),
		validation.Field(&c.Check,
			validation.By(func(value interface{}) error {
				cc, ok := value.(CheckConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a CheckConfig")
				}
				return validation.ValidateStruct(&cc,
					validation.Field(&cc.Attempts,
						validation.Required,
						validation.Min(1),
					),
					validation.Field(&cc.RetryDelay,
						validation.Min(time.Duration(0)),
					),
					validation.Field(&cc.ConnectTimeout,
						validation.Required,
						validation.Min(time.Millisecond),
					),
					validation.Field(&cc.RequestTimeout,
						validation.Required,
						validation.Min(time.Millisecond),
					),
					validation.Field(&cc.UserAgent,
						validation.Required,
						is.PrintableASCII,
					),
				)
			}),
		),
		validation.Field(&c.Report,
			validation.By(func(value interface{}) error {
				rc, ok := value.(ReportConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a ReportConfig")
				}
				return validation.ValidateStruct(&rc,
					validation.Field(&rc.EnvPrefix,
						validation.Required,
						validation.Match(envNamePattern).Error("must be an upper-case variable name"),
					),
				)
			}),
		),
		validation.Field(&c.Logging,
			validation.By(func(value interface{}) error {
				lc, ok := value.(LoggingConfig)
				if !ok {
					return validation.NewError("validation_invalid_type", "must be a LoggingConfig")
				}
				return validation.ValidateStruct(&lc,
					validation.Field(&lc.Level,
						validation.Required,
						validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
					),
				)
			}),
		),
	)
}
