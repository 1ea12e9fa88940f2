package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/fftwgo"
	"github.com/hupe1980/fftwgo/pool"
)

// Config keys. Each is also a flag name and, upper-cased with the
// FFTWISDOM_ prefix, an environment variable.
const (
	keyConfig     = "config"
	keyPrecision  = "precision"
	keyThreads    = "threads"
	keyProfile    = "profile"
	keyLogLevel   = "log-level"
	keyLogFormat  = "log-format"
	keyStore      = "store"
	keyName       = "name"
	keyRateLimit  = "rate-limit"
	keyS3Region   = "s3-region"
	keyS3Endpoint = "s3-endpoint"
	keyMinioKey   = "minio-access-key"
	keyMinioSec   = "minio-secret-key"
	keyMinioTLS   = "minio-secure"

	envPrefix = "FFTWISDOM"
)

// app holds the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *fftwgo.Logger
	pool   *pool.WorkerPool
	domain *fftwgo.Domain
}

func newApp() *app {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyPrecision, "double")
	v.SetDefault(keyThreads, 1)
	v.SetDefault(keyProfile, "external-pool")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFormat, "text")

	return &app{v: v}
}

func (a *app) close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "fftwisdom",
		Short: "Generate, check and distribute FFT planner wisdom",
		Long: `fftwisdom plans transforms ahead of time and saves the planner's
wisdom, so applications can create plans quickly at startup.

Every flag can also be set through an FFTWISDOM_* environment variable
(e.g. FFTWISDOM_LOG_LEVEL=debug) or a YAML config file (--config).`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (YAML)")
	pf.String(keyPrecision, "double", "transform precision: single or double")
	pf.Int(keyThreads, 1, "planner thread count")
	pf.String(keyProfile, "external-pool", "threading profile: external-pool or native")
	pf.String(keyLogLevel, "warn", "log level: debug, info, warn, error")
	pf.String(keyLogFormat, "text", "log format: text or json")

	root.AddCommand(a.generateCmd())
	root.AddCommand(a.checkCmd())
	root.AddCommand(a.pushCmd())
	root.AddCommand(a.pullCmd())
	return root
}

// setup resolves the configuration and builds the domain.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	logger, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel), a.v.GetString(keyLogFormat))
	if err != nil {
		return err
	}
	a.logger = logger

	p, ok := fftwgo.ParsePrecision(a.v.GetString(keyPrecision))
	if !ok {
		return fmt.Errorf("invalid precision %q", a.v.GetString(keyPrecision))
	}
	profile, ok := fftwgo.ParseThreadingProfile(a.v.GetString(keyProfile))
	if !ok {
		return fmt.Errorf("invalid profile %q", a.v.GetString(keyProfile))
	}
	threads := a.v.GetInt(keyThreads)
	if threads < 1 {
		return errors.New("threads must be at least 1")
	}

	a.pool = pool.NewWorkerPool(threads)
	a.domain = fftwgo.NewDomain(fftwgo.DefaultEngine(p),
		fftwgo.WithThreadingProfile(profile),
		fftwgo.WithWorkerPool(a.pool),
		fftwgo.WithLogger(logger),
	)

	if threads > 1 {
		if err := a.domain.InitThreads(); err != nil {
			return err
		}
	}
	a.domain.SetThreadCount(threads)
	return nil
}

func newLogger(w io.Writer, level, format string) (*fftwgo.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return fftwgo.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return fftwgo.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
