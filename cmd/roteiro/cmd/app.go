package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/roteiro/foundation/core/error"
	mdwlog "github.com/msto63/roteiro/foundation/core/log"
	"github.com/msto63/roteiro/foundation/roteiro"
	"github.com/msto63/roteiro/internal/store"
	"github.com/msto63/roteiro/pkg/core/cache"
	"github.com/msto63/roteiro/pkg/core/config"
	"github.com/msto63/roteiro/pkg/core/logging"
)

// LogFileName is written to the data directory while the viewer owns the terminal
const LogFileName = "roteiro.log"

// app bundles what every command needs: configuration, logger and engine
type app struct {
	cfg    *config.Config
	logger *mdwlog.Logger
	engine *roteiro.Engine

	cache     *cache.Cache
	logCloser io.Closer
}

type appOptions struct {
	// logToFile sends logs to the data directory instead of stderr
	logToFile bool
}

func newApp(opts appOptions) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load configuration").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("cmd.newApp")
	}

	logCfg := logging.DefaultLoggerConfig("roteiro")
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	if verbose {
		logCfg.Level = "debug"
	}
	if logFormat != "" {
		logCfg.Format = logFormat
	}
	if opts.logToFile {
		logCfg.Output = io.Discard
		logCfg.File = filepath.Join(cfg.General.DataDir, LogFileName)
	}

	logger, closer, err := logging.NewLogger(logCfg)
	if err != nil {
		return nil, err
	}
	mdwlog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger, logCloser: closer}

	engineOpts := roteiro.Options{
		Logger:         logger,
		MaxSourceSize:  cfg.Interpreter.MaxSourceSize,
		StrictTopLevel: cfg.Interpreter.StrictTopLevel,
	}
	if cfg.Interpreter.CacheEnabled {
		a.cache = cache.New(cache.Config{
			MaxItems:        cfg.Interpreter.CacheMaxItems,
			TTL:             cfg.Interpreter.CacheTTL.Duration,
			CleanupInterval: cfg.Interpreter.CacheTTL.Duration,
		})
		engineOpts.Cache = a.cache
	}

	a.engine, err = roteiro.New(engineOpts)
	if err != nil {
		a.Close()
		return nil, err
	}

	logger.Debug("Configuration loaded", mdwlog.Fields{
		"environment": cfg.General.Environment,
		"data_dir":    cfg.General.DataDir,
		"cache":       cfg.Interpreter.CacheEnabled,
	})
	return a, nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

// openStore opens the run history configured for this app
func (a *app) openStore() (*store.Store, error) {
	return store.Open(store.Config{Path: a.cfg.Store.Path, Logger: a.logger})
}

// Close releases the engine, cache and log file
func (a *app) Close() {
	if a.engine != nil {
		a.engine.Close()
	}
	if a.cache != nil {
		if stats := a.cache.Stats(); stats.Hits+stats.Misses > 0 {
			a.logger.Debug("Result cache statistics", mdwlog.Fields{
				"hits":     stats.Hits,
				"misses":   stats.Misses,
				"hit_rate": fmt.Sprintf("%.1f%%", stats.HitRate),
			})
		}
		a.cache.Close()
	}
	if a.logCloser != nil {
		a.logCloser.Close()
	}
}

// readSource reads an itinerary file, "-" reads stdin
func readSource(path string, stdin io.Reader) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read itinerary").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.readSource").
			WithDetail("path", path)
	}
	return string(data), nil
}
