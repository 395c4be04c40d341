// Package cli is the shared run harness of the one-shot admin commands:
// config, logger, signal-aware context, resources, task, exit code.
package cli

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/jobease/jobease-admin/internal/app"
	"github.com/jobease/jobease-admin/internal/config"
	"github.com/jobease/jobease-admin/pkg/logging"
	"github.com/jobease/jobease-admin/pkg/shutdown"
)

// Env is what a task receives
type Env struct {
	Config    config.Config
	Resources *app.Resources
	Logger    *logging.Logger
}

// Task is the body of one command. A returned error makes the command exit 1.
type Task func(ctx context.Context, env Env) error

// Option configures a Runner
type Option func(*Runner)

// WithValidate adds a config check that runs before any client is created
func WithValidate(validate func(config.Config) error) Option {
	return func(r *Runner) {
		r.validate = validate
	}
}

// Runner executes a Task with its dependencies
type Runner struct {
	loadConfig    func() (config.Config, error)
	newLogger     func(config.Config) *logging.Logger
	initResources func(context.Context, config.Config, *logging.Logger) (*app.Resources, func(), error)
	validate      func(config.Config) error
}

// NewRunner returns a Runner backed by the environment and Firestore
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		loadConfig: config.Load,
		newLogger: func(cfg config.Config) *logging.Logger {
			return logging.New(cfg.LogLevel, cfg.LogFormat)
		},
		initResources: app.InitializeResources,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes task as command name and returns the process exit code
func Run(name string, task Task, opts ...Option) int {
	return NewRunner(opts...).Run(name, task)
}

// Run executes task and returns 0 on success, 1 otherwise
func (r *Runner) Run(name string, task Task) int {
	cfg, err := r.loadConfig()
	if err != nil {
		log.Printf("%s: failed to load config: %v", name, err)
		return 1
	}

	logger := r.newLogger(cfg).With("command", name, "run_id", uuid.NewString())
	defer func() { _ = logger.Sync() }()

	if r.validate != nil {
		if err := r.validate(cfg); err != nil {
			logger.Error("invalid configuration", "err", err)
			return 1
		}
	}

	ctx, cancel := shutdown.Context(context.Background(), cfg.CommandTimeout, shutdown.DefaultSignals...)
	defer cancel()

	res, cleanup, err := r.initResources(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		return 1
	}
	if cleanup != nil {
		defer cleanup()
	}

	started := time.Now()
	logger.Info("command started")

	if err := task(ctx, Env{Config: cfg, Resources: res, Logger: logger}); err != nil {
		logger.Error("command failed", "err", err, "elapsed", time.Since(started).String())
		return 1
	}

	logger.Info("command finished", "elapsed", time.Since(started).String())
	return 0
}
