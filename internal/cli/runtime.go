package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/rulekit/modules/account"
	"github.com/dmitrymomot/rulekit/pkg/batch"
	"github.com/dmitrymomot/rulekit/pkg/capacity"
	"github.com/dmitrymomot/rulekit/pkg/config"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/observe"
)

// runtime holds everything a command needs to validate and report records.
type runtime struct {
	cfg      config.AppConfig
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *observe.Metrics
	pool     *batch.Pool
	tr       *i18n.Translator
	lang     string
	accounts *account.Service
	out      io.Writer
	closers  []func()
}

// newRuntime loads the configuration and applies cmd's flags on top of it.
// withCapacity connects to the configured user counter.
func newRuntime(ctx context.Context, cmd *cli.Command, withCapacity bool) (*runtime, error) {
	var cfg config.AppConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "rulekit"),
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
		logger.WithOutput(cmd.Root().ErrWriter),
	).With(logger.Command(cmd.Name))

	registry := prometheus.NewRegistry()
	rt := &runtime{
		cfg:      cfg,
		logger:   log,
		registry: registry,
		metrics:  observe.NewMetrics(registry),
		pool:     batch.New(cfg.Workers, batch.WithLogger(log)),
		out:      cmd.Root().Writer,
	}
	if rt.out == nil {
		rt.out = os.Stdout
	}
	rt.closers = append(rt.closers, rt.pool.Close)

	tr, err := i18n.NewDefaultTranslator(ctx, i18n.WithLogger(log))
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.tr = tr
	rt.lang = rt.language(cfg.Language)

	var counts *capacity.Service
	if withCapacity {
		counts, err = rt.connectCapacity(ctx)
		if err != nil {
			rt.Close()
			return nil, err
		}
	}
	rt.accounts = account.NewService(counts, account.WithLogger(log), account.WithMetrics(rt.metrics))
	return rt, nil
}

// applyFlags overrides configuration values with the flags set on cmd.
func applyFlags(cmd *cli.Command, cfg *config.AppConfig) {
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
	if cmd.IsSet("lang") {
		cfg.Language = cmd.String("lang")
	}
	if cmd.IsSet("total") {
		cfg.Capacity.Source = config.SourceMemory
		cfg.Capacity.Total = cmd.Int64("total")
	}
	if cmd.IsSet("max") {
		cfg.Capacity.MaxUsers = cmd.Int64("max")
	}
}

// scope stores the message language and kind in ctx for localization and
// for every record logged while the command runs.
func (rt *runtime) scope(ctx context.Context, kind string) context.Context {
	ctx = i18n.WithLanguage(ctx, rt.lang)
	attrs := []slog.Attr{logger.Lang(rt.lang)}
	if kind != "" {
		attrs = append(attrs, logger.Kind(kind))
	}
	return logger.WithContextAttrs(ctx, attrs...)
}

// language picks the catalog for preference, negotiating when it is not an
// exact language code.
func (rt *runtime) language(preference string) string {
	var notSupported *i18n.ErrLanguageNotSupported
	if err := rt.tr.Require(preference); errors.As(err, &notSupported) {
		lang := rt.tr.Match(preference)
		rt.logger.Debug("negotiated message language", slog.String("preference", preference), slog.String("lang", lang))
		return lang
	}
	return preference
}

func (rt *runtime) connectCapacity(ctx context.Context) (*capacity.Service, error) {
	c := rt.cfg.Capacity
	counters := capacity.NewRegistry()
	var healthcheck func(context.Context) error

	switch c.Source {
	case config.SourceRedis:
		client, err := capacity.ConnectRedis(ctx, rt.cfg.Redis)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, func() {
			if err := client.Close(); err != nil {
				rt.logger.Warn("failed to close redis client", logger.Error(err))
			}
		})
		counters.Register(capacity.ResourceUsers, capacity.RedisCounter(client, c.RedisKey))
		healthcheck = capacity.RedisHealthcheck(client)
	case config.SourcePostgres:
		pool, err := capacity.ConnectPostgres(ctx, rt.cfg.Postgres)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, pool.Close)
		counters.Register(capacity.ResourceUsers, capacity.PostgresCounter(pool, c.Query))
		healthcheck = capacity.PostgresHealthcheck(pool)
	default:
		counters.Register(capacity.ResourceUsers, capacity.StaticCounter(c.Total))
	}

	svc, err := capacity.NewService(map[capacity.Resource]int64{capacity.ResourceUsers: c.MaxUsers}, counters)
	if err != nil {
		return nil, fmt.Errorf("capacity source %q: %w", c.Source, err)
	}
	if healthcheck != nil {
		if err := healthcheck(ctx); err != nil {
			return nil, fmt.Errorf("capacity source %q: %w", c.Source, err)
		}
	}
	rt.logger.Debug("capacity source ready", slog.String("source", c.Source), slog.Int64("max_users", c.MaxUsers))
	return svc, nil
}

// Close releases connections and stops the worker pool, last opened first.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}
