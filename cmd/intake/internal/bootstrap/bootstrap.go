package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	intake "github.com/goliatone/go-news-intake"
	"github.com/goliatone/go-news-intake/internal/logging"
	"github.com/goliatone/go-news-intake/pkg/interfaces"
)

// Options captures the shared CLI bootstrap knobs. Flag values override the
// config file, which overrides INTAKE_* environment variables' defaults.
type Options struct {
	ConfigFile string
	Root       string
	IntakeDir  string
	LogLevel   string

	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the intake module with the logger the binaries report through.
type Module struct {
	Module *intake.Module
	Config intake.Config
	Logger interfaces.Logger
}

// LoadConfig resolves the effective configuration from defaults, an optional
// intake.yaml file, and INTAKE_* environment variables.
func LoadConfig(configFile string) (intake.Config, error) {
	cfg := intake.DefaultConfig()

	v := viper.New()
	v.SetDefault("paths.root", cfg.Paths.Root)
	v.SetDefault("paths.intake", cfg.Paths.Intake)
	v.SetDefault("index.command", cfg.Index.Command)
	v.SetDefault("vcs.enabled", cfg.VCS.Enabled)
	v.SetDefault("vcs.message_prefix", cfg.VCS.MessagePrefix)
	v.SetDefault("watch.enabled", cfg.Watch.Enabled)
	v.SetDefault("watch.schedule", cfg.Watch.Schedule)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
	v.SetDefault("logging.focus", cfg.Logging.Focus)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("intake")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("INTAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if configFile != "" {
			return cfg, fmt.Errorf("read config %s: %w", configFile, err)
		}
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	cfg.Paths.Root = v.GetString("paths.root")
	cfg.Paths.Intake = v.GetString("paths.intake")
	cfg.Index.Command = v.GetStringSlice("index.command")
	cfg.VCS.Enabled = v.GetBool("vcs.enabled")
	cfg.VCS.MessagePrefix = v.GetString("vcs.message_prefix")
	cfg.Watch.Enabled = v.GetBool("watch.enabled")
	cfg.Watch.Schedule = v.GetString("watch.schedule")
	cfg.Logging.Provider = v.GetString("logging.provider")
	cfg.Logging.Level = v.GetString("logging.level")
	cfg.Logging.Format = v.GetString("logging.format")
	cfg.Logging.AddSource = v.GetBool("logging.add_source")
	cfg.Logging.Focus = v.GetStringSlice("logging.focus")

	return cfg, nil
}

// BuildModule loads the configuration, applies the option overrides, and
// constructs a ready intake module with reports wired to stdout.
func BuildModule(opts Options) (*Module, error) {
	cfg, err := LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	if trimmed := strings.TrimSpace(opts.Root); trimmed != "" {
		cfg.Paths.Root = trimmed
	}
	if trimmed := strings.TrimSpace(opts.IntakeDir); trimmed != "" {
		cfg.Paths.Intake = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	moduleOpts := []intake.Option{intake.WithReportWriter(os.Stdout)}
	if opts.LoggerProvider != nil {
		moduleOpts = append(moduleOpts, intake.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := intake.New(cfg, moduleOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise intake module: %w", err)
	}

	logger := logging.ModuleLogger(module.LoggerProvider(), "intake.cli")

	return &Module{
		Module: module,
		Config: cfg,
		Logger: logger,
	}, nil
}
