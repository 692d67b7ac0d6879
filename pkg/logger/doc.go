// Package logger builds the slog loggers used across rulekit.
//
// New creates a *slog.Logger from functional options: output format (text or
// json), minimum level, static attributes and environment presets
// (WithDevelopment, WithStaging, WithProduction, WithEnvironment). ParseLevel
// and ParseFormat map configuration strings onto those options.
//
// Records logged with a context also carry context-scoped attributes. A
// command stores them once with WithContextAttrs and every library that logs
// through the *Context methods picks them up:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "rulekit"),
//		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	)
//	ctx = logger.WithContextAttrs(ctx, slog.String("kind", "register"))
//	log.InfoContext(ctx, "record rejected",
//		logger.Schema("register_user"),
//		logger.Violations(err),
//	)
//
// WithContextExtractors registers callbacks for values that other packages
// keep in the context under their own keys.
//
// Attribute helpers such as Schema, Violations, Command and Error keep key
// names consistent. Error and Errors return an empty attribute for nil errors,
// so they can be passed without a nil check.
package logger
